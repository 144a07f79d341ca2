package account

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"
)

// contextCredential is a string flag for use with context values when setting
// credentials internally.
type contextCredential string

const (
	// ContextCredentialsFlag used for retrieving api credentials from context
	ContextCredentialsFlag contextCredential = "apicredentials"

	apiKeyDisplaySize = 16
)

var errContextCredentialsFailure = errors.New("context credentials type assertion failure")

// Credentials define parameters that allow for an authenticated request.
// The key is sent as the HTTP Basic username and the secret as the password.
type Credentials struct {
	Key    string
	Secret string
}

// String prints out basic credential info (obfuscated) to track key instances
func (c *Credentials) String() string {
	obfuscated := c.Key
	if len(obfuscated) > apiKeyDisplaySize {
		obfuscated = obfuscated[:apiKeyDisplaySize]
	}
	return fmt.Sprintf("Key:[%s...]", obfuscated)
}

// IsEmpty return true if the underlying credentials type has not been filled
// with at least one item.
func (c *Credentials) IsEmpty() bool {
	return c == nil || c.Key == "" && c.Secret == ""
}

// BasicAuthHeader returns the value of an HTTP Basic Authorization header
func (c *Credentials) BasicAuthHeader() string {
	var key, secret string
	if c != nil {
		key, secret = c.Key, c.Secret
	}
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(key+":"+secret))
}

// ContextCredentialsStore protects the stored credentials for use in a context
type ContextCredentialsStore struct {
	creds *Credentials
	mu    sync.RWMutex
}

// Load stores provided credentials
func (c *ContextCredentialsStore) Load(creds *Credentials) {
	// Segregate from external call
	cpy := *creds
	c.mu.Lock()
	c.creds = &cpy
	c.mu.Unlock()
}

// Get returns the full credentials from the store
func (c *ContextCredentialsStore) Get() *Credentials {
	c.mu.RLock()
	creds := *c.creds
	c.mu.RUnlock()
	return &creds
}

// DeployCredentialsToContext sets credentials for internal use to context
// which can override default credential values.
func DeployCredentialsToContext(ctx context.Context, creds *Credentials) context.Context {
	if creds.IsEmpty() {
		return ctx
	}
	store := &ContextCredentialsStore{}
	store.Load(creds)
	return context.WithValue(ctx, ContextCredentialsFlag, store)
}

// GetCredentialsFromContext returns credentials deployed to the context, nil
// when none are present
func GetCredentialsFromContext(ctx context.Context) (*Credentials, error) {
	value := ctx.Value(ContextCredentialsFlag)
	if value == nil {
		return nil, nil
	}
	store, ok := value.(*ContextCredentialsStore)
	if !ok {
		return nil, errContextCredentialsFailure
	}
	return store.Get(), nil
}

package service

import (
	"fmt"
	"sync"

	"github.com/olusolaa/azmgmt/internal/core/domain"
	"github.com/olusolaa/azmgmt/internal/core/ports"
	"github.com/olusolaa/azmgmt/internal/errors"
)

// ComponentRegistry holds the external clients, one per resource kind they serve.
type ComponentRegistry struct {
	mu      sync.RWMutex
	clients map[domain.ResourceKind]any
}

func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		clients: make(map[domain.ResourceKind]any),
	}
}

func (r *ComponentRegistry) RegisterClient(kind domain.ResourceKind, client any) error {
	if client == nil {
		return errors.New(errors.CodeInternal, fmt.Sprintf("attempted to register nil client for kind '%s'", kind))
	}
	if kind == "" {
		return errors.New(errors.CodeInternal, "client kind cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.clients[kind]; exists {
		return errors.New(errors.CodeInternal, fmt.Sprintf("client for kind '%s' already registered", kind))
	}
	r.clients[kind] = client
	return nil
}

func lookup[T any](r *ComponentRegistry, kind domain.ResourceKind) (T, error) {
	var zero T

	r.mu.RLock()
	defer r.mu.RUnlock()

	c, exists := r.clients[kind]
	if !exists {
		return zero, errors.New(errors.CodeNotImplemented, fmt.Sprintf("no client registered for kind '%s'", kind))
	}
	typed, ok := c.(T)
	if !ok {
		return zero, errors.New(errors.CodeInternal, fmt.Sprintf("client registered for kind '%s' has unexpected type %T", kind, c))
	}
	return typed, nil
}

func (r *ComponentRegistry) DeploymentClient() (ports.DeploymentClient, error) {
	return lookup[ports.DeploymentClient](r, domain.KindDeployment)
}

func (r *ComponentRegistry) NetworkClient() (ports.NetworkClient, error) {
	return lookup[ports.NetworkClient](r, domain.KindNetworkConfig)
}

func (r *ComponentRegistry) TrafficManagerClient() (ports.TrafficManagerClient, error) {
	return lookup[ports.TrafficManagerClient](r, domain.KindTrafficProfile)
}

func (r *ComponentRegistry) AutomationClient() (ports.AutomationClient, error) {
	return lookup[ports.AutomationClient](r, domain.KindAutomationJob)
}

func (r *ComponentRegistry) WebsiteClient() (ports.WebsiteClient, error) {
	return lookup[ports.WebsiteClient](r, domain.KindWebsiteDeployment)
}

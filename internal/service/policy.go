package service

import (
	"learning_portal_backend/internal/config"
	"sync"
)

// Policy holds the product rules that a config reload may change while serving.
type Policy struct {
	mu  sync.RWMutex
	cfg config.PolicyConfig
}

func NewPolicy(cfg config.PolicyConfig) *Policy {
	return &Policy{cfg: cfg}
}

func (p *Policy) Get() config.PolicyConfig {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.cfg
}

func (p *Policy) Set(cfg config.PolicyConfig) {
	p.mu.Lock()
	p.cfg = cfg
	p.mu.Unlock()
}

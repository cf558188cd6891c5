// Package store persists the planner state as opaque JSON blobs in a
// diskv-backed key space: one blob per user account plus one for the
// current selection.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/semana/pkg/navigator"
	"tableflip.dev/semana/pkg/schedule"
)

// ErrAbsent signals that nothing has been persisted yet; the caller is
// expected to seed fresh state and save it.
var ErrAbsent = errors.New("store: no planner data")

const (
	accountPrefix = "account-"
	selectionKey  = "selection"
)

// Persistence is the persistence contract for the planner state.
type Persistence interface {
	Load(ctx context.Context) (schedule.UserData, error)
	Save(ctx context.Context, data schedule.UserData) error
	LoadSelection(ctx context.Context) (navigator.Selection, error)
	SaveSelection(ctx context.Context, sel navigator.Selection) error
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	})}, nil
}

type persistence struct {
	d *diskv.Diskv
}

func (p *persistence) Load(ctx context.Context) (schedule.UserData, error) {
	data := make(schedule.UserData)
	for key := range p.d.Keys(ctx.Done()) {
		if !strings.HasPrefix(key, accountPrefix) {
			continue
		}
		val, err := p.d.Read(key)
		if err != nil {
			return nil, fmt.Errorf("store: read %s: %w", key, err)
		}
		account := schedule.Account{}
		if err := json.Unmarshal(val, &account); err != nil {
			return nil, fmt.Errorf("store: decode %s: %w", key, err)
		}
		data[strings.TrimPrefix(key, accountPrefix)] = &account
	}
	if len(data) == 0 {
		return nil, ErrAbsent
	}
	return data, nil
}

func (p *persistence) Save(ctx context.Context, data schedule.UserData) error {
	for userID, account := range data {
		val, err := json.Marshal(account)
		if err != nil {
			return fmt.Errorf("store: encode %s: %w", userID, err)
		}
		if err := p.d.Write(accountPrefix+userID, val); err != nil {
			return fmt.Errorf("store: write %s: %w", userID, err)
		}
	}
	// Drop accounts that no longer exist so the blob always mirrors the
	// full in-memory state.
	for key := range p.d.Keys(ctx.Done()) {
		if !strings.HasPrefix(key, accountPrefix) {
			continue
		}
		if _, ok := data[strings.TrimPrefix(key, accountPrefix)]; !ok {
			if err := p.d.Erase(key); err != nil {
				return fmt.Errorf("store: erase %s: %w", key, err)
			}
		}
	}
	return nil
}

func (p *persistence) LoadSelection(ctx context.Context) (navigator.Selection, error) {
	val, err := p.d.Read(selectionKey)
	if err != nil {
		return navigator.Selection{}, ErrAbsent
	}
	sel := navigator.Selection{}
	if err := json.Unmarshal(val, &sel); err != nil {
		return navigator.Selection{}, fmt.Errorf("store: decode selection: %w", err)
	}
	return sel, nil
}

func (p *persistence) SaveSelection(ctx context.Context, sel navigator.Selection) error {
	val, err := json.Marshal(sel)
	if err != nil {
		return fmt.Errorf("store: encode selection: %w", err)
	}
	if err := p.d.Write(selectionKey, val); err != nil {
		return fmt.Errorf("store: write selection: %w", err)
	}
	return nil
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) == 0 {
		return pathKey.FileName
	}
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

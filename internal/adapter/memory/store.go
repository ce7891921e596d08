package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"reachpay/internal/core/custody"
	"reachpay/internal/core/domain"
	"reachpay/internal/core/port"
)

// Store implements port.Store in process memory. Units of work on the same
// campaign are serialized by a per-campaign mutex; their writes are staged and
// applied under the store lock only when the unit of work succeeds.
type Store struct {
	custodian *custody.Custodian

	mu        sync.RWMutex
	campaigns map[domain.CampaignID]domain.Campaign
	balances  map[domain.AccountID]uint64
	transfers []domain.Transfer

	locksMu sync.Mutex
	locks   map[domain.CampaignID]*campaignLock
}

// campaignLock is dropped from the lock table once no unit of work holds or
// waits for it.
type campaignLock struct {
	sync.Mutex
	refs int
}

// NewStore returns an empty store whose ledger checks escrow debits against
// custodian.
func NewStore(custodian *custody.Custodian) *Store {
	return &Store{
		custodian: custodian,
		campaigns: make(map[domain.CampaignID]domain.Campaign),
		balances:  make(map[domain.AccountID]uint64),
		locks:     make(map[domain.CampaignID]*campaignLock),
	}
}

var _ port.Store = (*Store)(nil)

func (s *Store) acquire(id domain.CampaignID) *campaignLock {
	s.locksMu.Lock()
	l, ok := s.locks[id]
	if !ok {
		l = &campaignLock{}
		s.locks[id] = l
	}
	l.refs++
	s.locksMu.Unlock()

	l.Lock()
	return l
}

func (s *Store) release(id domain.CampaignID, l *campaignLock) {
	l.Unlock()

	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	if l.refs--; l.refs == 0 {
		delete(s.locks, id)
	}
}

// Atomic implements port.Store.
func (s *Store) Atomic(ctx context.Context, id domain.CampaignID, fn func(ctx context.Context, tx port.Tx) error) error {
	l := s.acquire(id)
	defer s.release(id, l)

	if err := ctx.Err(); err != nil {
		return err
	}
	tx := &memTx{store: s, id: id}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	return s.commit(tx)
}

func (s *Store) commit(tx *memTx) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Balances of other campaigns' accounts may have moved since the
	// transfers were staged, so they are re-applied against current state.
	next := make(map[domain.AccountID]uint64)
	for _, t := range tx.transfers {
		if err := applyTransfer(next, s.balances, t); err != nil {
			return err
		}
	}
	if tx.inserted {
		if _, exists := s.campaigns[tx.id]; exists {
			return domain.ErrCampaignExists
		}
	}
	if tx.staged != nil {
		s.campaigns[tx.id] = *tx.staged
	}
	for account, amount := range next {
		s.balances[account] = amount
	}
	s.transfers = append(s.transfers, tx.transfers...)
	return nil
}

// applyTransfer moves t between balances in next, reading accounts not yet in
// next from base.
func applyTransfer(next, base map[domain.AccountID]uint64, t domain.Transfer) error {
	from, ok := next[t.From]
	if !ok {
		from = base[t.From]
	}
	to, ok := next[t.To]
	if !ok {
		to = base[t.To]
	}
	if from < t.Amount {
		return domain.ErrInsufficientFunds
	}
	credited, err := domain.CheckedAdd(to, t.Amount)
	if err != nil {
		return err
	}
	next[t.From] = from - t.Amount
	next[t.To] = credited
	return nil
}

// GetCampaign implements port.Store.
func (s *Store) GetCampaign(_ context.Context, id domain.CampaignID) (*domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.campaigns[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// ListActive implements port.Store.
func (s *Store) ListActive(_ context.Context, after domain.CampaignID, limit int) ([]domain.CampaignID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]domain.CampaignID, 0)
	for id, c := range s.campaigns {
		if c.IsActive && id > after {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}

// Transfers implements port.Store.
func (s *Store) Transfers(_ context.Context, id domain.CampaignID) ([]domain.Transfer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Transfer, 0)
	for _, t := range s.transfers {
		if t.CampaignID == id {
			out = append(out, t)
		}
	}
	return out, nil
}

// Balance implements port.Store.
func (s *Store) Balance(_ context.Context, account domain.AccountID) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.balances[account], nil
}

// Mint implements port.Store.
func (s *Store) Mint(_ context.Context, account domain.AccountID, amount uint64) error {
	if custody.IsEscrow(account) {
		return domain.ErrUnauthorizedTransfer
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	credited, err := domain.CheckedAdd(s.balances[account], amount)
	if err != nil {
		return err
	}
	s.balances[account] = credited
	return nil
}

type memTx struct {
	store     *Store
	id        domain.CampaignID
	staged    *domain.Campaign
	inserted  bool
	transfers []domain.Transfer
}

func (tx *memTx) Campaign(ctx context.Context) (*domain.Campaign, error) {
	if tx.staged != nil {
		c := *tx.staged
		return &c, nil
	}
	return tx.store.GetCampaign(ctx, tx.id)
}

func (tx *memTx) Insert(ctx context.Context, c domain.Campaign) error {
	if c.ID != tx.id {
		return fmt.Errorf("insert campaign %q in unit of work for %q", c.ID, tx.id)
	}
	existing, err := tx.Campaign(ctx)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.ErrCampaignExists
	}
	tx.staged = &c
	tx.inserted = true
	return nil
}

func (tx *memTx) Save(ctx context.Context, c domain.Campaign) error {
	if c.ID != tx.id {
		return fmt.Errorf("save campaign %q in unit of work for %q", c.ID, tx.id)
	}
	existing, err := tx.Campaign(ctx)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrCampaignNotFound
	}
	tx.staged = &c
	return nil
}

func (tx *memTx) Transfer(_ context.Context, t domain.Transfer, auth custody.Authority) error {
	if t.Amount == 0 || t.From == t.To {
		return domain.ErrInvalidTransfer
	}
	if err := tx.store.custodian.Authorize(auth, t.From); err != nil {
		return err
	}

	// Validate against committed balances plus what this unit of work has
	// already staged.
	tx.store.mu.RLock()
	defer tx.store.mu.RUnlock()
	next := make(map[domain.AccountID]uint64)
	for _, staged := range tx.transfers {
		if err := applyTransfer(next, tx.store.balances, staged); err != nil {
			return err
		}
	}
	if err := applyTransfer(next, tx.store.balances, t); err != nil {
		return err
	}
	tx.transfers = append(tx.transfers, t)
	return nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/urbanest/rental-search/api/internal/dto"
	"github.com/urbanest/rental-search/api/internal/service/nlquery"
)

// ErrSuperseded marks a dispatch whose result arrived after a newer dispatch
// from the same caller was started. Clients discard these silently.
var ErrSuperseded = errors.New("superseded by a newer search")

// Searcher executes a composed FilterSet against the search-execution service.
type Searcher interface {
	Search(ctx context.Context, filters dto.FilterSet, requestID string) (*dto.SearchOutcome, error)
}

// SearchService orchestrates one search action end-to-end: free-text
// extraction, composition with tier gating, then the collaborator call. It
// tracks the latest dispatch per caller so that a newer search cancels and
// supersedes an in-flight one.
type SearchService struct {
	searcher Searcher
	composer *Composer

	mu       sync.Mutex
	inflight map[string]*dispatchState
}

type dispatchState struct {
	seq    uint64
	cancel context.CancelFunc
}

// NewSearchService wires a dispatcher around the given collaborator client.
func NewSearchService(searcher Searcher, composer *Composer) *SearchService {
	if composer == nil {
		composer = NewComposer("")
	}
	return &SearchService{
		searcher: searcher,
		composer: composer,
		inflight: make(map[string]*dispatchState),
	}
}

// Search runs a dispatch for the given caller. callerKey identifies whose
// previous dispatch is superseded; tier gates lifestyle fields.
func (s *SearchService) Search(ctx context.Context, callerKey, tier, requestID string, req dto.SearchRequest) (*dto.SearchResponse, error) {
	var text nlquery.Result
	if q := strings.TrimSpace(req.Query); q != "" {
		text = nlquery.Extract(q)
	}

	filters := s.composer.Compose(ComposeInput{
		Filters:   req.Filters,
		Lifestyle: req.Lifestyle,
		Text:      text,
		Tier:      tier,
		Page:      req.Page,
		Limit:     req.Limit,
	})

	callCtx, seq := s.begin(ctx, callerKey)
	defer s.finish(callerKey, seq)

	outcome, err := s.searcher.Search(callCtx, filters, requestID)
	if !s.isLatest(callerKey, seq) {
		return nil, ErrSuperseded
	}
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, ErrSuperseded
		}
		return nil, fmt.Errorf("execute search: %w", err)
	}

	return &dto.SearchResponse{
		Filters:    filters,
		Properties: outcome.Properties,
		TotalCount: outcome.TotalCount,
		HasMore:    outcome.HasMore,
	}, nil
}

// begin registers a new dispatch, cancelling the caller's previous in-flight
// call, and returns a cancellable context plus the dispatch sequence number.
func (s *SearchService) begin(ctx context.Context, callerKey string) (context.Context, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.inflight[callerKey]
	if !ok {
		state = &dispatchState{}
		s.inflight[callerKey] = state
	}
	if state.cancel != nil {
		state.cancel()
	}

	state.seq++
	callCtx, cancel := context.WithCancel(ctx)
	state.cancel = cancel
	return callCtx, state.seq
}

func (s *SearchService) isLatest(callerKey string, seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.inflight[callerKey]
	return ok && state.seq == seq
}

// finish releases the cancel func for the dispatch if it is still the latest.
func (s *SearchService) finish(callerKey string, seq uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.inflight[callerKey]
	if !ok || state.seq != seq {
		return
	}
	if state.cancel != nil {
		state.cancel()
		state.cancel = nil
	}
}

package usecase

import (
	"fmt"
	"sort"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/viney-shih/goroutines"

	"github.com/debay/auctionclient/base/counter"
	bCtx "github.com/debay/auctionclient/base/ctx"
	"github.com/debay/auctionclient/base/log"
	"github.com/debay/auctionclient/base/pricenorm"
	"github.com/debay/auctionclient/domain"
)

type ListingUseCaseCfg struct {
	Marketplace domain.MarketplaceRepo
	Metadata    domain.MetadataUseCase
	Price       pricenorm.Normalizer
}

// syncCall lets callers arriving during a pass join its result instead of
// starting a second pass against the chain.
type syncCall struct {
	done chan struct{}
	res  []*domain.EnrichedListing
	err  error
}

type listingUseCase struct {
	marketplace domain.MarketplaceRepo
	metadata    domain.MetadataUseCase
	price       pricenorm.Normalizer

	mu       sync.Mutex
	inflight *syncCall
	latest   domain.SyncState
	updates  chan domain.SyncState
	passes   *counter.Counter
}

func NewListingUseCase(cfg *ListingUseCaseCfg) domain.ListingUseCase {
	return &listingUseCase{
		marketplace: cfg.Marketplace,
		metadata:    cfg.Metadata,
		price:       cfg.Price,
		latest:      domain.SyncState{Status: domain.SyncStatusIdle},
		updates:     make(chan domain.SyncState, 1),
		passes:      counter.NewCounter(),
	}
}

func (u *listingUseCase) Synchronize(c bCtx.Ctx) ([]*domain.EnrichedListing, error) {
	u.mu.Lock()
	if u.inflight != nil {
		call := u.inflight
		u.mu.Unlock()
		select {
		case <-call.done:
		case <-c.Done():
			return nil, c.Err()
		}
		return call.res, call.err
	}
	call := &syncCall{done: make(chan struct{})}
	u.inflight = call
	u.publishLocked(domain.SyncState{Status: domain.SyncStatusLoading, Listings: u.latest.Listings})
	u.mu.Unlock()

	res, err := u.synchronize(c)

	u.mu.Lock()
	call.res, call.err = res, err
	u.inflight = nil
	if err != nil {
		u.latest = domain.SyncState{Status: domain.SyncStatusFailed, Listings: u.latest.Listings, Err: err}
	} else {
		u.latest = domain.SyncState{Status: domain.SyncStatusReady, Listings: res}
	}
	u.publishLocked(u.latest)
	u.mu.Unlock()
	close(call.done)
	return res, err
}

func (u *listingUseCase) Latest() domain.SyncState {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.latest
}

func (u *listingUseCase) Updates() <-chan domain.SyncState {
	return u.updates
}

// publishLocked drops the undelivered update, if any, so a slow consumer only
// ever sees the newest state.
func (u *listingUseCase) publishLocked(s domain.SyncState) {
	select {
	case <-u.updates:
	default:
	}
	u.updates <- s
}

func (u *listingUseCase) synchronize(c bCtx.Ctx) ([]*domain.EnrichedListing, error) {
	count, err := u.marketplace.ListingCount(c)
	if err != nil {
		c.WithField("err", err).Error("marketplace.ListingCount failed")
		return nil, err
	}

	// listing ids start at 1 on chain
	open := make([]*domain.Listing, 0, count)
	for id := uint64(1); id <= count; id++ {
		listing, err := u.marketplace.GetListing(c, domain.ListingId(id))
		if err != nil {
			c.WithFields(log.Fields{
				"listingId": id,
				"err":       err,
			}).Error("marketplace.GetListing failed")
			return nil, err
		}
		if listing.AuctionState != domain.AuctionStateOpen {
			continue
		}
		open = append(open, listing)
	}
	if len(open) == 0 {
		return []*domain.EnrichedListing{}, nil
	}

	// batch enrich with metadata and display prices
	b := goroutines.NewBatch(10, goroutines.WithBatchSize(len(open)))
	defer b.Close()
	for i := 0; i < len(open); i++ {
		idx := i
		b.Queue(func() (interface{}, error) {
			return u.enrich(c, open[idx]), nil
		})
	}
	b.QueueComplete()

	enriched := make([]*domain.EnrichedListing, 0, len(open))
	for ret := range b.Results() {
		if ret.Error() != nil {
			c.WithField("err", ret.Error()).Error("enrich error result")
			continue
		}
		enriched = append(enriched, ret.Value().(*domain.EnrichedListing))
	}
	sort.Slice(enriched, func(i, j int) bool {
		return enriched[i].ListingId < enriched[j].ListingId
	})

	u.passes.Add(1)
	c.WithFields(log.Fields{
		"open":   len(enriched),
		"total":  count,
		"passes": u.passes.Count(),
	}).Info("listings synchronized")
	return enriched, nil
}

// enrich never fails the pass: a listing whose metadata cannot be resolved is
// kept with placeholder fields so one broken token does not hide the rest.
func (u *listingUseCase) enrich(c bCtx.Ctx, listing *domain.Listing) *domain.EnrichedListing {
	e := &domain.EnrichedListing{Listing: *listing}

	price, err := u.price.Normalize(listing.CurrentPrice)
	if err != nil {
		c.WithFields(log.Fields{
			"listingId": listing.ListingId,
			"err":       err,
		}).Warn("price.Normalize failed")
		price = decimal.Zero
	}
	e.DisplayPrice = price

	metadata, err := u.metadata.Resolve(c, listing.Nft, listing.TokenId)
	if err != nil {
		c.WithFields(log.Fields{
			"listingId": listing.ListingId,
			"nft":       listing.Nft,
			"tokenId":   listing.TokenId,
			"err":       err,
		}).Warn("metadata.Resolve failed, keeping placeholder")
		e.Name = fmt.Sprintf("Token #%s", listing.TokenId)
		return e
	}
	e.Name = metadata.Name
	e.Description = metadata.Description
	e.ImageUrl = metadata.Image
	return e
}

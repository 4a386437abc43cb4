package usecase

import (
	"math/big"

	bCtx "github.com/debay/auctionclient/base/ctx"
	"github.com/debay/auctionclient/base/log"
	"github.com/debay/auctionclient/domain"
)

type BidUseCaseCfg struct {
	Marketplace domain.MarketplaceRepo
	PayToken    domain.PayTokenRepo
	NftApprover domain.NftApproverRepo
	Listings    domain.ListingUseCase
}

type bidUseCase struct {
	marketplace domain.MarketplaceRepo
	payToken    domain.PayTokenRepo
	nftApprover domain.NftApproverRepo
	listings    domain.ListingUseCase
}

func NewBidUseCase(cfg *BidUseCaseCfg) domain.BidUseCase {
	return &bidUseCase{
		marketplace: cfg.Marketplace,
		payToken:    cfg.PayToken,
		nftApprover: cfg.NftApprover,
		listings:    cfg.Listings,
	}
}

func (u *bidUseCase) SubmitBid(c bCtx.Ctx, session *domain.Session, listingId domain.ListingId, amount *big.Int) (*domain.TransactionOutcome, error) {
	// local guards run before anything touches the network
	if amount == nil || amount.Sign() <= 0 {
		return nil, domain.ErrInvalidBidInput
	}
	if err := u.checkSession(session); err != nil {
		return nil, err
	}

	outcome := &domain.TransactionOutcome{}

	receipt, err := u.payToken.Approve(c, session.Signer, u.marketplace.Address(), amount)
	if err != nil {
		c.WithFields(log.Fields{
			"listingId": listingId,
			"err":       err,
		}).Error("payToken.Approve failed")
		return outcome, domain.WrapKind(domain.ErrTransactionRejected, err)
	}
	outcome.ApproveTxHash = domain.TxHash(receipt.TxHash.Hex())
	outcome.AllowanceGranted = true

	receipt, err = u.marketplace.PlaceBid(c, session.Signer, listingId, amount)
	if err != nil {
		// the allowance stays in place, the two steps have no atomicity
		c.WithFields(log.Fields{
			"listingId": listingId,
			"err":       err,
		}).Error("marketplace.PlaceBid failed")
		return outcome, domain.WrapKind(domain.ErrTransactionRejected, err)
	}
	outcome.ActionTxHash = domain.TxHash(receipt.TxHash.Hex())

	u.resync(c)
	return outcome, nil
}

func (u *bidUseCase) CreateListing(c bCtx.Ctx, session *domain.Session, params *domain.CreateListingParams) (*domain.TransactionOutcome, error) {
	if params == nil || params.Nft.IsEmpty() || params.StartPrice == nil || params.StartPrice.Sign() <= 0 || params.Reserve == nil || params.DurationDays == 0 {
		return nil, domain.ErrBadParamInput
	}
	if err := u.checkSession(session); err != nil {
		return nil, err
	}

	outcome := &domain.TransactionOutcome{}

	receipt, err := u.nftApprover.SetApprovalForAll(c, session.Signer, params.Nft, u.marketplace.Address(), true)
	if err != nil {
		c.WithFields(log.Fields{
			"nft": params.Nft,
			"err": err,
		}).Error("nftApprover.SetApprovalForAll failed")
		return outcome, domain.WrapKind(domain.ErrTransactionRejected, err)
	}
	outcome.ApproveTxHash = domain.TxHash(receipt.TxHash.Hex())
	outcome.AllowanceGranted = true

	receipt, err = u.marketplace.CreateListing(c, session.Signer, params)
	if err != nil {
		c.WithFields(log.Fields{
			"nft":     params.Nft,
			"tokenId": params.TokenId,
			"err":     err,
		}).Error("marketplace.CreateListing failed")
		return outcome, domain.WrapKind(domain.ErrTransactionRejected, err)
	}
	outcome.ActionTxHash = domain.TxHash(receipt.TxHash.Hex())

	u.resync(c)
	return outcome, nil
}

func (u *bidUseCase) checkSession(session *domain.Session) error {
	if session == nil || session.Signer == nil {
		return domain.ErrNoSession
	}
	if session.ChainId != u.marketplace.ChainId() {
		return domain.ErrNetworkMismatch
	}
	return nil
}

// resync refreshes the listing snapshot after a confirmed transaction. The
// transaction already succeeded, a failed refresh only gets logged.
func (u *bidUseCase) resync(c bCtx.Ctx) {
	if _, err := u.listings.Synchronize(c); err != nil {
		c.WithField("err", err).Warn("listings.Synchronize failed")
	}
}

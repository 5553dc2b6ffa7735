// Package impl contains the implementations of the usecase interfaces.
package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	guestStore  service.GuestCartStore
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	GuestStore  service.GuestCartStore
	Logger      *slog.Logger
}

// NewCartService creates a new cart service instance
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
		guestStore:  params.GuestStore,
		logger:      params.Logger,
	}
}

// LoadCart materializes the owner's cart. Any persistence failure degrades to
// an empty cart with a warning: the cart view must never block browsing.
func (s *cartService) LoadCart(ctx context.Context, owner entity.CartOwner) (*entity.Cart, error) {
	lines, err := s.loadLines(ctx, owner)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to load cart, falling back to empty",
			slog.String("owner", owner.Key()),
			slog.Any("error", err),
		)

		return &entity.Cart{Owner: owner, Lines: []*entity.CartLine{}}, nil
	}

	return &entity.Cart{Owner: owner, Lines: lines}, nil
}

// loadLines reads raw lines and, for authenticated owners, re-joins the
// product snapshot live. Guest lines keep the snapshot captured at add time.
func (s *cartService) loadLines(ctx context.Context, owner entity.CartOwner) ([]*entity.CartLine, error) {
	if owner.IsGuest() {
		lines, err := s.guestStore.Load(ctx, owner.SessionID())
		if err != nil {
			return nil, errors.Wrap(err, "failed to load guest cart")
		}

		return lines, nil
	}

	lines, err := s.cartRepo.FindLinesByUser(ctx, owner.UserID())
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cart lines by user")
	}

	return s.joinProducts(ctx, lines)
}

// joinProducts attaches current product snapshots to persisted lines in one
// batched read. Lines whose product no longer exists are dropped from the view.
func (s *cartService) joinProducts(ctx context.Context, lines []*entity.CartLine) ([]*entity.CartLine, error) {
	if len(lines) == 0 {
		return []*entity.CartLine{}, nil
	}

	ids := make([]int64, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ProductID)
	}

	products, err := s.productRepo.FindProductsByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find products by ids")
	}

	byID := make(map[int64]*entity.Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}

	joined := make([]*entity.CartLine, 0, len(lines))
	for _, line := range lines {
		product, ok := byID[line.ProductID]
		if !ok {
			continue
		}

		line.Product = product.Snapshot()
		joined = append(joined, line)
	}

	return joined, nil
}

// AddLine adds quantity of (productID, size), incrementing an existing line
// when the pair is already in the cart.
func (s *cartService) AddLine(ctx context.Context, owner entity.CartOwner, productID int64, size string, quantity int) (*entity.Cart, error) {
	if quantity < 1 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	if owner.IsGuest() {
		if err := s.addGuestLine(ctx, owner.SessionID(), product, size, quantity); err != nil {
			return nil, err
		}

		return s.LoadCart(ctx, owner)
	}

	if err := s.addUserLine(ctx, owner, product, size, quantity); err != nil {
		return nil, err
	}

	return s.LoadCart(ctx, owner)
}

// addGuestLine rewrites the session's line list wholesale.
func (s *cartService) addGuestLine(ctx context.Context, sessionID string, product *entity.Product, size string, quantity int) error {
	lines, err := s.guestStore.Load(ctx, sessionID)
	if err != nil {
		return errors.Wrap(err, "failed to load guest cart")
	}

	if existing := findLine(lines, product.ID, size); existing != nil {
		existing.Quantity += quantity
	} else {
		lines = append(lines, &entity.CartLine{
			ID:        entity.NewGuestLineID(),
			ProductID: product.ID,
			Size:      size,
			Quantity:  quantity,
			Product:   product.Snapshot(),
		})
	}

	if err := s.guestStore.Save(ctx, sessionID, lines); err != nil {
		return errors.Wrap(err, "failed to save guest cart")
	}

	return nil
}

// addUserLine reads the (product, size) line and either increments it or
// creates it. The read and the write are separate statements; two concurrent
// adds for the same pair can race and one increment can be lost.
func (s *cartService) addUserLine(ctx context.Context, owner entity.CartOwner, product *entity.Product, size string, quantity int) error {
	existing, err := s.cartRepo.FindLineByProductAndSize(ctx, owner.UserID(), product.ID, size)
	if err != nil && !errors.Is(err, repository.ErrCartLineNotFound) {
		return errors.Wrap(err, "failed to find cart line by product and size")
	}

	if existing != nil {
		if err := s.cartRepo.UpdateLineQuantity(ctx, owner.UserID(), existing.ID, existing.Quantity+quantity); err != nil {
			return errors.Wrap(err, "failed to update cart line quantity")
		}

		return nil
	}

	line := &entity.CartLine{
		ProductID: product.ID,
		Size:      size,
		Quantity:  quantity,
	}
	if err := s.cartRepo.CreateLine(ctx, owner.UserID(), line); err != nil {
		return errors.Wrap(err, "failed to create cart line")
	}

	return nil
}

// UpdateQuantity sets a line's quantity. Quantities below 1 leave the cart
// untouched and return the current view.
func (s *cartService) UpdateQuantity(ctx context.Context, owner entity.CartOwner, lineID string, quantity int) (*entity.Cart, error) {
	if quantity < 1 {
		return s.LoadCart(ctx, owner)
	}

	if owner.IsGuest() {
		if err := s.updateGuestLine(ctx, owner.SessionID(), lineID, quantity); err != nil {
			return nil, err
		}

		return s.LoadCart(ctx, owner)
	}

	if err := s.cartRepo.UpdateLineQuantity(ctx, owner.UserID(), lineID, quantity); err != nil {
		return nil, errors.Wrap(err, "failed to update cart line quantity")
	}

	return s.LoadCart(ctx, owner)
}

func (s *cartService) updateGuestLine(ctx context.Context, sessionID, lineID string, quantity int) error {
	lines, err := s.guestStore.Load(ctx, sessionID)
	if err != nil {
		return errors.Wrap(err, "failed to load guest cart")
	}

	found := false
	for _, line := range lines {
		if line.ID == lineID {
			line.Quantity = quantity
			found = true

			break
		}
	}
	// An unknown line id matches nothing; nothing to write back.
	if !found {
		return nil
	}

	if err := s.guestStore.Save(ctx, sessionID, lines); err != nil {
		return errors.Wrap(err, "failed to save guest cart")
	}

	return nil
}

// RemoveLine removes a line by id. Removing a missing id is a no-op.
func (s *cartService) RemoveLine(ctx context.Context, owner entity.CartOwner, lineID string) (*entity.Cart, error) {
	if owner.IsGuest() {
		if err := s.removeGuestLine(ctx, owner.SessionID(), lineID); err != nil {
			return nil, err
		}

		return s.LoadCart(ctx, owner)
	}

	if err := s.cartRepo.DeleteLine(ctx, owner.UserID(), lineID); err != nil {
		return nil, errors.Wrap(err, "failed to delete cart line")
	}

	return s.LoadCart(ctx, owner)
}

func (s *cartService) removeGuestLine(ctx context.Context, sessionID, lineID string) error {
	lines, err := s.guestStore.Load(ctx, sessionID)
	if err != nil {
		return errors.Wrap(err, "failed to load guest cart")
	}

	kept := make([]*entity.CartLine, 0, len(lines))
	for _, line := range lines {
		if line.ID != lineID {
			kept = append(kept, line)
		}
	}
	if len(kept) == len(lines) {
		return nil
	}

	if err := s.guestStore.Save(ctx, sessionID, kept); err != nil {
		return errors.Wrap(err, "failed to save guest cart")
	}

	return nil
}

// ClearCart removes every line for the owner. Idempotent.
func (s *cartService) ClearCart(ctx context.Context, owner entity.CartOwner) error {
	if owner.IsGuest() {
		if err := s.guestStore.Clear(ctx, owner.SessionID()); err != nil {
			return errors.Wrap(err, "failed to clear guest cart")
		}

		return nil
	}

	if err := s.cartRepo.DeleteLinesByUser(ctx, owner.UserID()); err != nil {
		return errors.Wrap(err, "failed to delete cart lines by user")
	}

	return nil
}

// MergeGuestCart folds a guest session's lines into the user's cart on
// sign-in, summing quantities for matching (product, size) pairs.
func (s *cartService) MergeGuestCart(ctx context.Context, sessionID string, userID uuid.UUID) (*entity.Cart, error) {
	owner := entity.AuthenticatedOwner(userID)

	guestLines, err := s.guestStore.Load(ctx, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load guest cart")
	}

	for _, guestLine := range guestLines {
		if guestLine.Quantity < 1 {
			continue
		}

		product, err := s.productRepo.FindProductByID(ctx, guestLine.ProductID)
		if err != nil {
			// Products can disappear between add and sign-in; skip the line.
			if errors.Is(err, repository.ErrProductNotFound) {
				continue
			}

			return nil, errors.Wrap(err, "failed to find product by id")
		}

		if err := s.addUserLine(ctx, owner, product, guestLine.Size, guestLine.Quantity); err != nil {
			return nil, err
		}
	}

	if err := s.guestStore.Clear(ctx, sessionID); err != nil {
		s.logger.WarnContext(ctx, "failed to clear guest cart after merge",
			slog.String("sessionID", sessionID),
			slog.Any("error", err),
		)
	}

	return s.LoadCart(ctx, owner)
}

// findLine returns the line matching (productID, size), or nil.
func findLine(lines []*entity.CartLine, productID int64, size string) *entity.CartLine {
	for _, line := range lines {
		if line.ProductID == productID && line.Size == size {
			return line
		}
	}

	return nil
}

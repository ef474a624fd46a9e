package service

import (
	"context"
	"errors"
	"strings"

	"conference-ticketing/internal/model"
	"conference-ticketing/internal/repository"
	apperrors "conference-ticketing/pkg/app_errors"

	"github.com/Rhymond/go-money"
)

const currencyMismatchMessage = "is different from the existing tickets of this conference."

type TicketService interface {
	Get(ctx context.Context, id int) (*model.Ticket, error)
	ListByConference(ctx context.Context, conferenceID int) ([]*model.Ticket, error)
	Create(ctx context.Context, ticket *model.Ticket) (*model.Ticket, error)
	Update(ctx context.Context, id int, params model.UpdateTicketParams) (*model.Ticket, error)
	// Delete 刪除票券及其購買紀錄
	Delete(ctx context.Context, id int) error
	Buyers(ctx context.Context, ticketID int) ([]int, error)

	BoughtBy(ctx context.Context, ticketID int, userID int) (bool, error)
	PaidBy(ctx context.Context, ticketID int, userID int) (bool, error)
	UnpaidBy(ctx context.Context, ticketID int, userID int) (bool, error)
	QuantityPurchasedBy(ctx context.Context, ticketID int, userID int, paid bool) (int, error)
	// TotalPrice 購買數量 × 單價
	TotalPrice(ctx context.Context, ticket *model.Ticket, userID int, paid bool) (*money.Money, error)
	// TotalPriceAcrossTickets 加總使用者在會議所有票券的金額；幣別無法相加時回傳 -1
	TotalPriceAcrossTickets(ctx context.Context, conferenceID int, userID int, paid bool) (*money.Money, error)
	TicketsSold(ctx context.Context, ticketID int) (int, error)
	TicketsTurnover(ctx context.Context, ticket *model.Ticket) (*money.Money, error)

	Stats(ctx context.Context, ticketID int) (*model.TicketStats, error)
	UserStatus(ctx context.Context, ticketID int, userID int) (*model.UserTicketStatus, error)
}

type TicketServiceImpl struct {
	repo              repository.TicketRepository
	purchaseRepo      repository.TicketPurchaseRepository
	conferenceRepo    repository.ConferenceRepository
	referenceCurrency string
}

func NewTicketService(
	repo repository.TicketRepository,
	purchaseRepo repository.TicketPurchaseRepository,
	conferenceRepo repository.ConferenceRepository,
	referenceCurrency string,
) TicketService {
	return &TicketServiceImpl{
		repo:              repo,
		purchaseRepo:      purchaseRepo,
		conferenceRepo:    conferenceRepo,
		referenceCurrency: referenceCurrency,
	}
}

func (s *TicketServiceImpl) Get(ctx context.Context, id int) (*model.Ticket, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *TicketServiceImpl) ListByConference(ctx context.Context, conferenceID int) ([]*model.Ticket, error) {
	if _, err := s.conferenceRepo.FindByID(ctx, conferenceID); err != nil {
		return nil, err
	}
	return s.repo.ListByConferenceID(ctx, conferenceID)
}

func (s *TicketServiceImpl) Create(ctx context.Context, ticket *model.Ticket) (*model.Ticket, error) {
	if _, err := s.conferenceRepo.FindByID(ctx, ticket.ConferenceID); err != nil {
		return nil, err
	}

	ticket.PriceCurrency = strings.ToUpper(ticket.PriceCurrency)
	if err := s.validate(ctx, ticket, 0); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, ticket)
}

func (s *TicketServiceImpl) Update(ctx context.Context, id int, params model.UpdateTicketParams) (*model.Ticket, error) {
	if params.IsEmpty() {
		return nil, apperrors.ErrInvalidInput
	}

	ticket, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 以更新後的內容重新驗證
	params.Apply(ticket)
	if err := s.validate(ctx, ticket, ticket.ID); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, id, params)
}

// validate 欄位驗證加上同會議幣別一致檢查
func (s *TicketServiceImpl) validate(ctx context.Context, ticket *model.Ticket, excludeID int) error {
	errs := ticket.Validate()

	if ticket.PriceCurrency != "" && ticket.ConferenceID != 0 {
		currencies, err := s.repo.CurrenciesByConferenceID(ctx, ticket.ConferenceID, excludeID)
		if err != nil {
			return err
		}
		for _, c := range currencies {
			if !strings.EqualFold(c, ticket.PriceCurrency) {
				errs.Add("price_currency", currencyMismatchMessage)
				break
			}
		}
	}

	return errs.OrNil()
}

func (s *TicketServiceImpl) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (s *TicketServiceImpl) Buyers(ctx context.Context, ticketID int) ([]int, error) {
	if _, err := s.repo.FindByID(ctx, ticketID); err != nil {
		return nil, err
	}
	return s.purchaseRepo.ListBuyers(ctx, ticketID)
}

func (s *TicketServiceImpl) BoughtBy(ctx context.Context, ticketID int, userID int) (bool, error) {
	return s.purchaseRepo.IsBuyer(ctx, ticketID, userID)
}

func (s *TicketServiceImpl) PaidBy(ctx context.Context, ticketID int, userID int) (bool, error) {
	return s.purchaseRepo.HasPurchase(ctx, ticketID, userID, true)
}

func (s *TicketServiceImpl) UnpaidBy(ctx context.Context, ticketID int, userID int) (bool, error) {
	return s.purchaseRepo.HasPurchase(ctx, ticketID, userID, false)
}

func (s *TicketServiceImpl) QuantityPurchasedBy(ctx context.Context, ticketID int, userID int, paid bool) (int, error) {
	return s.purchaseRepo.SumQuantity(ctx, ticketID, userID, paid)
}

func (s *TicketServiceImpl) TotalPrice(ctx context.Context, ticket *model.Ticket, userID int, paid bool) (*money.Money, error) {
	quantity, err := s.purchaseRepo.SumQuantity(ctx, ticket.ID, userID, paid)
	if err != nil {
		return nil, err
	}
	return ticket.Price().Multiply(int64(quantity)), nil
}

func (s *TicketServiceImpl) TotalPriceAcrossTickets(ctx context.Context, conferenceID int, userID int, paid bool) (*money.Money, error) {
	tickets, err := s.repo.ListByConferenceID(ctx, conferenceID)
	if err != nil {
		return nil, err
	}

	var result *money.Money
	for _, ticket := range tickets {
		price, err := s.TotalPrice(ctx, ticket, userID, paid)
		if err != nil {
			return nil, err
		}

		if result == nil {
			result = price
			continue
		}
		if price.IsZero() {
			continue
		}

		result, err = result.Add(price)
		if errors.Is(err, money.ErrCurrencyMismatch) {
			return money.New(model.ConversionFailedCents, s.referenceCurrency), nil
		}
		if err != nil {
			return nil, err
		}
	}

	if result == nil {
		return money.New(0, s.referenceCurrency), nil
	}
	return result, nil
}

func (s *TicketServiceImpl) TicketsSold(ctx context.Context, ticketID int) (int, error) {
	return s.purchaseRepo.SumQuantityByTicket(ctx, ticketID)
}

func (s *TicketServiceImpl) TicketsTurnover(ctx context.Context, ticket *model.Ticket) (*money.Money, error) {
	sold, err := s.purchaseRepo.SumQuantityByTicket(ctx, ticket.ID)
	if err != nil {
		return nil, err
	}
	return ticket.Price().Multiply(int64(sold)), nil
}

func (s *TicketServiceImpl) Stats(ctx context.Context, ticketID int) (*model.TicketStats, error) {
	ticket, err := s.repo.FindByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	sold, err := s.purchaseRepo.SumQuantityByTicket(ctx, ticket.ID)
	if err != nil {
		return nil, err
	}

	return &model.TicketStats{
		TicketID:        ticket.ID,
		TicketsSold:     sold,
		TicketsTurnover: model.NewMoney(ticket.Price().Multiply(int64(sold))),
	}, nil
}

func (s *TicketServiceImpl) UserStatus(ctx context.Context, ticketID int, userID int) (*model.UserTicketStatus, error) {
	ticket, err := s.repo.FindByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	bought, err := s.BoughtBy(ctx, ticket.ID, userID)
	if err != nil {
		return nil, err
	}
	paidQuantity, err := s.QuantityPurchasedBy(ctx, ticket.ID, userID, true)
	if err != nil {
		return nil, err
	}
	unpaidQuantity, err := s.QuantityPurchasedBy(ctx, ticket.ID, userID, false)
	if err != nil {
		return nil, err
	}

	// quantity > 0 保證有數量就有紀錄
	price := ticket.Price()
	return &model.UserTicketStatus{
		TicketID:       ticket.ID,
		UserID:         userID,
		Bought:         bought,
		Paid:           paidQuantity > 0,
		Unpaid:         unpaidQuantity > 0,
		PaidQuantity:   paidQuantity,
		UnpaidQuantity: unpaidQuantity,
		PaidTotal:      model.NewMoney(price.Multiply(int64(paidQuantity))),
		UnpaidTotal:    model.NewMoney(price.Multiply(int64(unpaidQuantity))),
	}, nil
}

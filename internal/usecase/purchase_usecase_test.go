package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"strings"
	"testing"
	"time"

	"imobiliaria_xpto/internal/domain/entities"
	"imobiliaria_xpto/internal/usecase/interfaces"
	mock_interfaces "imobiliaria_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func moneyBRL(amount int64) entities.Money {
	return entities.Money{Amount: amount, Currency: entities.CurrencyBRL}
}

func availableProperty(id string) entities.PropertyListing {
	return entities.PropertyListing{
		ID:            id,
		Title:         "Casa Vila Mariana",
		Address:       "Rua Domingos de Morais 100",
		AgentID:       "agent-1",
		Price:         moneyBRL(500000),
		Marketability: entities.MarketabilityAvailable,
	}
}

func pendingPurchase(id string, total, remaining int64, version int64) entities.Purchase {
	now := time.Now().UTC()
	return entities.Purchase{
		ID:              id,
		PropertyID:      "prop-1",
		BuyerID:         "buyer-1",
		TotalAmount:     moneyBRL(total),
		RemainingAmount: moneyBRL(remaining),
		Status:          entities.PurchaseStatusPending,
		Version:         version,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func TestPurchaseUseCase_CreatePurchase_Validations(t *testing.T) {
	t.Run("empty property id", func(t *testing.T) {
		uc := NewPurchaseUseCase(nil, nil, nil, nil, nil)
		_, err := uc.CreatePurchase(context.Background(), " ", "buyer-1", moneyBRL(100), entities.Money{}, "")
		if !errors.Is(err, ErrInvalidPropertyID) {
			t.Fatalf("expected ErrInvalidPropertyID, got %v", err)
		}
	})

	t.Run("empty buyer id", func(t *testing.T) {
		uc := NewPurchaseUseCase(nil, nil, nil, nil, nil)
		_, err := uc.CreatePurchase(context.Background(), "prop-1", "", moneyBRL(100), entities.Money{}, "")
		if !errors.Is(err, ErrInvalidBuyerID) {
			t.Fatalf("expected ErrInvalidBuyerID, got %v", err)
		}
	})

	t.Run("non-positive total", func(t *testing.T) {
		uc := NewPurchaseUseCase(nil, nil, nil, nil, nil)
		_, err := uc.CreatePurchase(context.Background(), "prop-1", "buyer-1", moneyBRL(0), entities.Money{}, "")
		if !errors.Is(err, entities.ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})
}

func TestPurchaseUseCase_CreatePurchase_PropertyChecks(t *testing.T) {
	t.Run("property repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		propRepo := mock_interfaces.NewMockIPropertyRepository(ctrl)
		uc := NewPurchaseUseCase(nil, propRepo, nil, nil, nil)

		propRepo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(entities.PropertyListing{}, errors.New("db"))

		_, err := uc.CreatePurchase(context.Background(), "prop-1", "buyer-1", moneyBRL(100), entities.Money{}, "")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("property not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		propRepo := mock_interfaces.NewMockIPropertyRepository(ctrl)
		uc := NewPurchaseUseCase(nil, propRepo, nil, nil, nil)

		propRepo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(entities.PropertyListing{}, nil)

		_, err := uc.CreatePurchase(context.Background(), "prop-1", "buyer-1", moneyBRL(100), entities.Money{}, "")
		if !errors.Is(err, ErrPropertyNotFound) {
			t.Fatalf("expected ErrPropertyNotFound, got %v", err)
		}
	})

	t.Run("property already reserved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		propRepo := mock_interfaces.NewMockIPropertyRepository(ctrl)
		uc := NewPurchaseUseCase(nil, propRepo, nil, nil, nil)

		prop := availableProperty("prop-1")
		prop.Marketability = entities.MarketabilityReserved
		propRepo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(prop, nil)

		_, err := uc.CreatePurchase(context.Background(), "prop-1", "buyer-1", moneyBRL(100), entities.Money{}, "")
		if !errors.Is(err, ErrPropertyNotAvailable) {
			t.Fatalf("expected ErrPropertyNotAvailable, got %v", err)
		}
	})
}

func TestPurchaseUseCase_CreatePurchase_Success(t *testing.T) {
	t.Run("without down payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPurchaseRepository(ctrl)
		propRepo := mock_interfaces.NewMockIPropertyRepository(ctrl)
		notifier := mock_interfaces.NewMockINotificationDispatcher(ctrl)
		uc := NewPurchaseUseCase(repo, propRepo, nil, notifier, nil)

		propRepo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(availableProperty("prop-1"), nil)
		repo.EXPECT().CreatePurchase(gomock.Any(), gomock.Any(), nil, gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Purchase, _ *entities.Payment, reserve entities.MarketabilityUpdate) (entities.Purchase, error) {
				if p.Status != entities.PurchaseStatusPending {
					t.Fatalf("expected pending purchase, got %s", p.Status)
				}
				if p.RemainingAmount != moneyBRL(500000) {
					t.Fatalf("remaining should equal total, got %+v", p.RemainingAmount)
				}
				if p.Version != 1 {
					t.Fatalf("new purchase must start at version 1, got %d", p.Version)
				}
				if reserve.PropertyID != "prop-1" || reserve.Marketability != entities.MarketabilityReserved {
					t.Fatalf("expected reservation update, got %+v", reserve)
				}
				return p, nil
			},
		)
		notifier.EXPECT().Enqueue("buyer-1", string(entities.EventPurchaseCreated), gomock.Any())

		res, err := uc.CreatePurchase(context.Background(), "prop-1", "buyer-1", moneyBRL(500000), entities.Money{}, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated purchase id")
		}
	})

	t.Run("with down payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPurchaseRepository(ctrl)
		propRepo := mock_interfaces.NewMockIPropertyRepository(ctrl)
		notifier := mock_interfaces.NewMockINotificationDispatcher(ctrl)
		uc := NewPurchaseUseCase(repo, propRepo, nil, notifier, nil)

		propRepo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(availableProperty("prop-1"), nil)
		repo.EXPECT().CreatePurchase(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Purchase, down *entities.Payment, reserve entities.MarketabilityUpdate) (entities.Purchase, error) {
				if p.RemainingAmount != moneyBRL(400000) {
					t.Fatalf("expected remaining 400000, got %+v", p.RemainingAmount)
				}
				if p.PaymentsApplied != 1 {
					t.Fatalf("expected one applied payment, got %d", p.PaymentsApplied)
				}
				if down == nil || down.Amount != moneyBRL(100000) || down.Sequence != 1 {
					t.Fatalf("unexpected down payment: %+v", down)
				}
				if down.Method != "down_payment" {
					t.Fatalf("unexpected down payment method: %s", down.Method)
				}
				return p, nil
			},
		)
		notifier.EXPECT().Enqueue("buyer-1", string(entities.EventPurchaseCreated), gomock.Any())

		res, err := uc.CreatePurchase(context.Background(), "prop-1", "buyer-1", moneyBRL(500000), moneyBRL(100000), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.PurchaseStatusPending {
			t.Fatalf("expected pending, got %s", res.Status)
		}
	})

	t.Run("down payment covering total completes at creation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPurchaseRepository(ctrl)
		propRepo := mock_interfaces.NewMockIPropertyRepository(ctrl)
		notifier := mock_interfaces.NewMockINotificationDispatcher(ctrl)
		uc := NewPurchaseUseCase(repo, propRepo, nil, notifier, nil)

		propRepo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(availableProperty("prop-1"), nil)
		repo.EXPECT().CreatePurchase(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Purchase, down *entities.Payment, reserve entities.MarketabilityUpdate) (entities.Purchase, error) {
				if p.Status != entities.PurchaseStatusCompleted {
					t.Fatalf("expected completed, got %s", p.Status)
				}
				if reserve.Marketability != entities.MarketabilitySold {
					t.Fatalf("expected sold flag, got %s", reserve.Marketability)
				}
				return p, nil
			},
		)
		notifier.EXPECT().Enqueue("buyer-1", string(entities.EventPurchaseCompleted), gomock.Any())

		_, err := uc.CreatePurchase(context.Background(), "prop-1", "buyer-1", moneyBRL(500000), moneyBRL(500000), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("down payment exceeding total rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		propRepo := mock_interfaces.NewMockIPropertyRepository(ctrl)
		uc := NewPurchaseUseCase(nil, propRepo, nil, nil, nil)

		propRepo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(availableProperty("prop-1"), nil)

		_, err := uc.CreatePurchase(context.Background(), "prop-1", "buyer-1", moneyBRL(100), moneyBRL(200), "")
		if !errors.Is(err, entities.ErrAmountExceedsBalance) {
			t.Fatalf("expected ErrAmountExceedsBalance, got %v", err)
		}
	})

	t.Run("reservation lost to concurrent purchase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPurchaseRepository(ctrl)
		propRepo := mock_interfaces.NewMockIPropertyRepository(ctrl)
		uc := NewPurchaseUseCase(repo, propRepo, nil, nil, nil)

		propRepo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(availableProperty("prop-1"), nil)
		repo.EXPECT().CreatePurchase(gomock.Any(), gomock.Any(), nil, gomock.Any()).Return(entities.Purchase{}, interfaces.ErrPropertyStateConflict)

		_, err := uc.CreatePurchase(context.Background(), "prop-1", "buyer-1", moneyBRL(100), entities.Money{}, "")
		if !errors.Is(err, ErrPropertyNotAvailable) {
			t.Fatalf("expected ErrPropertyNotAvailable, got %v", err)
		}
	})
}

func TestPurchaseUseCase_ApplyPayment_Validations(t *testing.T) {
	t.Run("empty purchase id", func(t *testing.T) {
		uc := NewPurchaseUseCase(nil, nil, nil, nil, nil)
		_, _, err := uc.ApplyPayment(context.Background(), " ", moneyBRL(100), "pix", "")
		if !errors.Is(err, ErrInvalidPurchaseID) {
			t.Fatalf("expected ErrInvalidPurchaseID, got %v", err)
		}
	})

	t.Run("non-positive amount", func(t *testing.T) {
		uc := NewPurchaseUseCase(nil, nil, nil, nil, nil)
		_, _, err := uc.ApplyPayment(context.Background(), "pur-1", moneyBRL(0), "pix", "")
		if !errors.Is(err, entities.ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("purchase not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPurchaseRepository(ctrl)
		uc := NewPurchaseUseCase(repo, nil, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "pur-1").Return(entities.Purchase{}, nil)

		_, _, err := uc.ApplyPayment(context.Background(), "pur-1", moneyBRL(100), "pix", "")
		if !errors.Is(err, ErrPurchaseNotFound) {
			t.Fatalf("expected ErrPurchaseNotFound, got %v", err)
		}
	})

	t.Run("amount exceeds balance leaves store untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPurchaseRepository(ctrl)
		uc := NewPurchaseUseCase(repo, nil, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "pur-1").Return(pendingPurchase("pur-1", 500000, 100000, 3), nil)

		_, _, err := uc.ApplyPayment(context.Background(), "pur-1", moneyBRL(150000), "pix", "")
		if !errors.Is(err, entities.ErrAmountExceedsBalance) {
			t.Fatalf("expected ErrAmountExceedsBalance, got %v", err)
		}
	})

	t.Run("closed purchase rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPurchaseRepository(ctrl)
		uc := NewPurchaseUseCase(repo, nil, nil, nil, nil)

		p := pendingPurchase("pur-1", 100, 100, 2)
		p.Status = entities.PurchaseStatusCancelled
		repo.EXPECT().GetByID(gomock.Any(), "pur-1").Return(p, nil)

		_, _, err := uc.ApplyPayment(context.Background(), "pur-1", moneyBRL(50), "pix", "")
		if !errors.Is(err, entities.ErrPurchaseClosed) {
			t.Fatalf("expected ErrPurchaseClosed, got %v", err)
		}
	})
}

func TestPurchaseUseCase_ApplyPayment_Commit(t *testing.T) {
	t.Run("partial payment keeps purchase pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPurchaseRepository(ctrl)
		notifier := mock_interfaces.NewMockINotificationDispatcher(ctrl)
		uc := NewPurchaseUseCase(repo, nil, nil, notifier, nil)

		repo.EXPECT().GetByID(gomock.Any(), "pur-1").Return(pendingPurchase("pur-1", 500000, 400000, 2), nil)
		repo.EXPECT().CommitTransition(gomock.Any(), gomock.Any(), int64(2), gomock.Any(), nil).DoAndReturn(
			func(_ context.Context, p entities.Purchase, _ int64, payment *entities.Payment, _ *entities.MarketabilityUpdate) (entities.Purchase, error) {
				if p.RemainingAmount != moneyBRL(250000) {
					t.Fatalf("expected remaining 250000, got %+v", p.RemainingAmount)
				}
				if p.Status != entities.PurchaseStatusPending {
					t.Fatalf("expected pending, got %s", p.Status)
				}
				if p.Version != 3 {
					t.Fatalf("expected version bump to 3, got %d", p.Version)
				}
				if payment == nil || payment.Amount != moneyBRL(150000) || payment.Method != "pix" {
					t.Fatalf("unexpected payment: %+v", payment)
				}
				if payment.Sequence != p.PaymentsApplied {
					t.Fatalf("sequence must match applied counter")
				}
				return p, nil
			},
		)
		notifier.EXPECT().Enqueue("buyer-1", string(entities.EventPaymentRecorded), gomock.Any())

		committed, payment, err := uc.ApplyPayment(context.Background(), "pur-1", moneyBRL(150000), "pix", "second installment")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if committed.Status != entities.PurchaseStatusPending {
			t.Fatalf("expected pending, got %s", committed.Status)
		}
		if payment.Status != entities.PaymentStatusCompleted {
			t.Fatalf("payments are always settled facts, got %s", payment.Status)
		}
	})

	t.Run("final payment completes and marks property sold", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPurchaseRepository(ctrl)
		notifier := mock_interfaces.NewMockINotificationDispatcher(ctrl)
		uc := NewPurchaseUseCase(repo, nil, nil, notifier, nil)

		repo.EXPECT().GetByID(gomock.Any(), "pur-1").Return(pendingPurchase("pur-1", 500000, 250000, 3), nil)
		repo.EXPECT().CommitTransition(gomock.Any(), gomock.Any(), int64(3), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Purchase, _ int64, _ *entities.Payment, update *entities.MarketabilityUpdate) (entities.Purchase, error) {
				if p.Status != entities.PurchaseStatusCompleted {
					t.Fatalf("expected completed, got %s", p.Status)
				}
				if p.CompletedAt == nil {
					t.Fatalf("completed purchase must carry CompletedAt")
				}
				if update == nil || update.Marketability != entities.MarketabilitySold || update.PropertyID != "prop-1" {
					t.Fatalf("expected sold update, got %+v", update)
				}
				return p, nil
			},
		)
		notifier.EXPECT().Enqueue("buyer-1", string(entities.EventPurchaseCompleted), gomock.Any())

		committed, _, err := uc.ApplyPayment(context.Background(), "pur-1", moneyBRL(250000), "transfer", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !committed.RemainingAmount.IsZero() {
			t.Fatalf("expected zero remaining, got %+v", committed.RemainingAmount)
		}
	})

	t.Run("version conflict surfaces as concurrent update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPurchaseRepository(ctrl)
		uc := NewPurchaseUseCase(repo, nil, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "pur-1").Return(pendingPurchase("pur-1", 500000, 400000, 2), nil)
		repo.EXPECT().CommitTransition(gomock.Any(), gomock.Any(), int64(2), gomock.Any(), nil).Return(entities.Purchase{}, interfaces.ErrPurchaseVersionConflict)

		_, _, err := uc.ApplyPayment(context.Background(), "pur-1", moneyBRL(100), "pix", "")
		if !errors.Is(err, ErrConcurrentUpdate) {
			t.Fatalf("expected ErrConcurrentUpdate, got %v", err)
		}
	})

	t.Run("commit error passthrough", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPurchaseRepository(ctrl)
		uc := NewPurchaseUseCase(repo, nil, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "pur-1").Return(pendingPurchase("pur-1", 500000, 400000, 2), nil)
		repo.EXPECT().CommitTransition(gomock.Any(), gomock.Any(), int64(2), gomock.Any(), nil).Return(entities.Purchase{}, errors.New("db"))

		_, _, err := uc.ApplyPayment(context.Background(), "pur-1", moneyBRL(100), "pix", "")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestPurchaseUseCase_ApplyPayment_OnlineGateway(t *testing.T) {
	t.Run("gateway not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPurchaseRepository(ctrl)
		uc := NewPurchaseUseCase(repo, nil, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "pur-1").Return(pendingPurchase("pur-1", 500000, 400000, 2), nil)

		_, _, err := uc.ApplyPayment(context.Background(), "pur-1", moneyBRL(100), PaymentMethodOnline, "")
		if err == nil || err.Error() != "payment gateway not configured" {
			t.Fatalf("expected gateway not configured error, got %v", err)
		}
	})

	t.Run("gateway error aborts before commit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPurchaseRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPurchaseUseCase(repo, nil, gateway, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "pur-1").Return(pendingPurchase("pur-1", 500000, 400000, 2), nil)
		gateway.EXPECT().Charge(gomock.Any(), moneyBRL(100), gomock.Any(), "pur-1").Return("", "", nil, errors.New("mp down"))

		_, _, err := uc.ApplyPayment(context.Background(), "pur-1", moneyBRL(100), PaymentMethodOnline, "")
		if err == nil || err.Error() != "mp down" {
			t.Fatalf("expected mp down, got %v", err)
		}
	})

	t.Run("declined charge aborts before commit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPurchaseRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPurchaseUseCase(repo, nil, gateway, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "pur-1").Return(pendingPurchase("pur-1", 500000, 400000, 2), nil)
		gateway.EXPECT().Charge(gomock.Any(), moneyBRL(100), gomock.Any(), "pur-1").Return("mp-1", "rejected", json.RawMessage(`{"status":"rejected"}`), nil)

		_, _, err := uc.ApplyPayment(context.Background(), "pur-1", moneyBRL(100), PaymentMethodOnline, "")
		if !errors.Is(err, ErrPaymentDeclined) {
			t.Fatalf("expected ErrPaymentDeclined, got %v", err)
		}
	})

	t.Run("approved charge records provider id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPurchaseRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		notifier := mock_interfaces.NewMockINotificationDispatcher(ctrl)
		uc := NewPurchaseUseCase(repo, nil, gateway, notifier, nil)

		repo.EXPECT().GetByID(gomock.Any(), "pur-1").Return(pendingPurchase("pur-1", 500000, 400000, 2), nil)
		gateway.EXPECT().Charge(gomock.Any(), moneyBRL(100), "Purchase pur-1 installment 1", "pur-1").Return("mp-1", "approved", json.RawMessage(`{"id":1}`), nil)
		repo.EXPECT().CommitTransition(gomock.Any(), gomock.Any(), int64(2), gomock.Any(), nil).DoAndReturn(
			func(_ context.Context, p entities.Purchase, _ int64, payment *entities.Payment, _ *entities.MarketabilityUpdate) (entities.Purchase, error) {
				if payment.ProviderPaymentID != "mp-1" {
					t.Fatalf("expected provider id recorded, got %q", payment.ProviderPaymentID)
				}
				return p, nil
			},
		)
		notifier.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any())

		_, payment, err := uc.ApplyPayment(context.Background(), "pur-1", moneyBRL(100), PaymentMethodOnline, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if payment.ProviderPaymentID != "mp-1" {
			t.Fatalf("expected provider id on returned payment, got %q", payment.ProviderPaymentID)
		}
	})

	t.Run("version conflict after capture names the orphaned charge", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPurchaseRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPurchaseUseCase(repo, nil, gateway, nil, nil)

		var buf bytes.Buffer
		log.SetOutput(&buf)
		defer log.SetOutput(os.Stderr)

		repo.EXPECT().GetByID(gomock.Any(), "pur-1").Return(pendingPurchase("pur-1", 500000, 400000, 2), nil)
		gateway.EXPECT().Charge(gomock.Any(), moneyBRL(100), gomock.Any(), "pur-1").Return("mp-7", "approved", json.RawMessage(`{"id":7}`), nil)
		repo.EXPECT().CommitTransition(gomock.Any(), gomock.Any(), int64(2), gomock.Any(), nil).Return(entities.Purchase{}, interfaces.ErrPurchaseVersionConflict)

		_, _, err := uc.ApplyPayment(context.Background(), "pur-1", moneyBRL(100), PaymentMethodOnline, "")
		if !errors.Is(err, ErrConcurrentUpdate) {
			t.Fatalf("expected ErrConcurrentUpdate, got %v", err)
		}
		if !strings.Contains(buf.String(), "mp-7") {
			t.Fatalf("expected the conflict log to name the captured provider payment, log: %s", buf.String())
		}
	})
}

func TestPurchaseUseCase_CancelPurchase(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc := NewPurchaseUseCase(nil, nil, nil, nil, nil)
		_, err := uc.CancelPurchase(context.Background(), " ", "")
		if !errors.Is(err, ErrInvalidPurchaseID) {
			t.Fatalf("expected ErrInvalidPurchaseID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPurchaseRepository(ctrl)
		uc := NewPurchaseUseCase(repo, nil, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "pur-1").Return(entities.Purchase{}, nil)

		_, err := uc.CancelPurchase(context.Background(), "pur-1", "")
		if !errors.Is(err, ErrPurchaseNotFound) {
			t.Fatalf("expected ErrPurchaseNotFound, got %v", err)
		}
	})

	t.Run("completed purchase cannot cancel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPurchaseRepository(ctrl)
		uc := NewPurchaseUseCase(repo, nil, nil, nil, nil)

		p := pendingPurchase("pur-1", 100, 0, 3)
		p.Status = entities.PurchaseStatusCompleted
		repo.EXPECT().GetByID(gomock.Any(), "pur-1").Return(p, nil)

		_, err := uc.CancelPurchase(context.Background(), "pur-1", "")
		if !errors.Is(err, entities.ErrPurchaseClosed) {
			t.Fatalf("expected ErrPurchaseClosed, got %v", err)
		}
	})

	t.Run("success releases property", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPurchaseRepository(ctrl)
		notifier := mock_interfaces.NewMockINotificationDispatcher(ctrl)
		uc := NewPurchaseUseCase(repo, nil, nil, notifier, nil)

		repo.EXPECT().GetByID(gomock.Any(), "pur-1").Return(pendingPurchase("pur-1", 500000, 400000, 2), nil)
		repo.EXPECT().CommitTransition(gomock.Any(), gomock.Any(), int64(2), nil, gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Purchase, _ int64, _ *entities.Payment, update *entities.MarketabilityUpdate) (entities.Purchase, error) {
				if p.Status != entities.PurchaseStatusCancelled {
					t.Fatalf("expected cancelled, got %s", p.Status)
				}
				if update == nil || update.Marketability != entities.MarketabilityAvailable {
					t.Fatalf("expected release update, got %+v", update)
				}
				return p, nil
			},
		)
		notifier.EXPECT().Enqueue("buyer-1", string(entities.EventPurchaseCancelled), gomock.Any())

		res, err := uc.CancelPurchase(context.Background(), "pur-1", "buyer withdrew")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.PurchaseStatusCancelled {
			t.Fatalf("expected cancelled, got %s", res.Status)
		}
	})

	t.Run("version conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPurchaseRepository(ctrl)
		uc := NewPurchaseUseCase(repo, nil, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "pur-1").Return(pendingPurchase("pur-1", 100, 100, 1), nil)
		repo.EXPECT().CommitTransition(gomock.Any(), gomock.Any(), int64(1), nil, gomock.Any()).Return(entities.Purchase{}, interfaces.ErrPurchaseVersionConflict)

		_, err := uc.CancelPurchase(context.Background(), "pur-1", "")
		if !errors.Is(err, ErrConcurrentUpdate) {
			t.Fatalf("expected ErrConcurrentUpdate, got %v", err)
		}
	})
}

func TestPurchaseUseCase_SetPurchaseStatus(t *testing.T) {
	t.Run("invalid target status", func(t *testing.T) {
		uc := NewPurchaseUseCase(nil, nil, nil, nil, nil)
		_, err := uc.SetPurchaseStatus(context.Background(), "pur-1", entities.PurchaseStatusPending, "")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("cancelled delegates to cancel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPurchaseRepository(ctrl)
		notifier := mock_interfaces.NewMockINotificationDispatcher(ctrl)
		uc := NewPurchaseUseCase(repo, nil, nil, notifier, nil)

		repo.EXPECT().GetByID(gomock.Any(), "pur-1").Return(pendingPurchase("pur-1", 100, 100, 1), nil)
		repo.EXPECT().CommitTransition(gomock.Any(), gomock.Any(), int64(1), nil, gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Purchase, _ int64, _ *entities.Payment, _ *entities.MarketabilityUpdate) (entities.Purchase, error) {
				return p, nil
			},
		)
		notifier.EXPECT().Enqueue(gomock.Any(), string(entities.EventPurchaseCancelled), gomock.Any())

		res, err := uc.SetPurchaseStatus(context.Background(), "pur-1", entities.PurchaseStatusCancelled, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.PurchaseStatusCancelled {
			t.Fatalf("expected cancelled, got %s", res.Status)
		}
	})

	t.Run("force complete with remaining balance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPurchaseRepository(ctrl)
		notifier := mock_interfaces.NewMockINotificationDispatcher(ctrl)
		uc := NewPurchaseUseCase(repo, nil, nil, notifier, nil)

		repo.EXPECT().GetByID(gomock.Any(), "pur-1").Return(pendingPurchase("pur-1", 500000, 100000, 4), nil)
		repo.EXPECT().CommitTransition(gomock.Any(), gomock.Any(), int64(4), nil, gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Purchase, _ int64, _ *entities.Payment, update *entities.MarketabilityUpdate) (entities.Purchase, error) {
				if p.Status != entities.PurchaseStatusCompleted {
					t.Fatalf("expected completed, got %s", p.Status)
				}
				if !p.ClosedWithBalance {
					t.Fatalf("expected closed-with-balance flag")
				}
				if update == nil || update.Marketability != entities.MarketabilitySold {
					t.Fatalf("expected sold update, got %+v", update)
				}
				return p, nil
			},
		)
		notifier.EXPECT().Enqueue(gomock.Any(), string(entities.EventPurchaseCompleted), gomock.Any())

		res, err := uc.SetPurchaseStatus(context.Background(), "pur-1", entities.PurchaseStatusCompleted, "reconciled offline")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.ClosedWithBalance {
			t.Fatalf("expected closed-with-balance on result")
		}
	})

	t.Run("force complete version conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPurchaseRepository(ctrl)
		uc := NewPurchaseUseCase(repo, nil, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "pur-1").Return(pendingPurchase("pur-1", 100, 100, 1), nil)
		repo.EXPECT().CommitTransition(gomock.Any(), gomock.Any(), int64(1), nil, gomock.Any()).Return(entities.Purchase{}, interfaces.ErrPurchaseVersionConflict)

		_, err := uc.SetPurchaseStatus(context.Background(), "pur-1", entities.PurchaseStatusCompleted, "")
		if !errors.Is(err, ErrConcurrentUpdate) {
			t.Fatalf("expected ErrConcurrentUpdate, got %v", err)
		}
	})
}

func TestPurchaseUseCase_Getters(t *testing.T) {
	t.Run("GetByID invalid", func(t *testing.T) {
		uc := NewPurchaseUseCase(nil, nil, nil, nil, nil)
		_, err := uc.GetByID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidPurchaseID) {
			t.Fatalf("expected ErrInvalidPurchaseID, got %v", err)
		}
	})

	t.Run("GetByID not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPurchaseRepository(ctrl)
		uc := NewPurchaseUseCase(repo, nil, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "pur-1").Return(entities.Purchase{}, nil)

		_, err := uc.GetByID(context.Background(), "pur-1")
		if !errors.Is(err, ErrPurchaseNotFound) {
			t.Fatalf("expected ErrPurchaseNotFound, got %v", err)
		}
	})

	t.Run("GetByID success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPurchaseRepository(ctrl)
		uc := NewPurchaseUseCase(repo, nil, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "pur-1").Return(pendingPurchase("pur-1", 100, 100, 1), nil)

		res, err := uc.GetByID(context.Background(), " pur-1 ")
		if err != nil || res.ID != "pur-1" {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})

	t.Run("ListPayments invalid", func(t *testing.T) {
		uc := NewPurchaseUseCase(nil, nil, nil, nil, nil)
		_, err := uc.ListPayments(context.Background(), "")
		if !errors.Is(err, ErrInvalidPurchaseID) {
			t.Fatalf("expected ErrInvalidPurchaseID, got %v", err)
		}
	})

	t.Run("ListPayments purchase not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPurchaseRepository(ctrl)
		uc := NewPurchaseUseCase(repo, nil, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "pur-1").Return(entities.Purchase{}, nil)

		_, err := uc.ListPayments(context.Background(), "pur-1")
		if !errors.Is(err, ErrPurchaseNotFound) {
			t.Fatalf("expected ErrPurchaseNotFound, got %v", err)
		}
	})

	t.Run("ListPayments success when ledger reconciles", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPurchaseRepository(ctrl)
		uc := NewPurchaseUseCase(repo, nil, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "pur-1").Return(pendingPurchase("pur-1", 100, 50, 2), nil)
		expected := []entities.Payment{
			{ID: "pay-1", Amount: moneyBRL(30), Sequence: 1},
			{ID: "pay-2", Amount: moneyBRL(20), Sequence: 2},
		}
		repo.EXPECT().ListPaymentsByPurchaseID(gomock.Any(), "pur-1").Return(expected, nil)

		res, err := uc.ListPayments(context.Background(), "pur-1")
		if err != nil || len(res) != 2 {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})

	t.Run("ListPayments rejects a ledger that diverges from the stored balance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPurchaseRepository(ctrl)
		uc := NewPurchaseUseCase(repo, nil, nil, nil, nil)

		// Payments sum to 30, so the recomputed remaining is 70 while the
		// purchase row says 50.
		repo.EXPECT().GetByID(gomock.Any(), "pur-1").Return(pendingPurchase("pur-1", 100, 50, 2), nil)
		repo.EXPECT().ListPaymentsByPurchaseID(gomock.Any(), "pur-1").Return([]entities.Payment{
			{ID: "pay-1", Amount: moneyBRL(30), Sequence: 1},
		}, nil)

		_, err := uc.ListPayments(context.Background(), "pur-1")
		if !errors.Is(err, entities.ErrLedgerInvariant) {
			t.Fatalf("expected ErrLedgerInvariant, got %v", err)
		}
	})

	t.Run("ListPayments rejects a ledger that exceeds the total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPurchaseRepository(ctrl)
		uc := NewPurchaseUseCase(repo, nil, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "pur-1").Return(pendingPurchase("pur-1", 100, 0, 3), nil)
		repo.EXPECT().ListPaymentsByPurchaseID(gomock.Any(), "pur-1").Return([]entities.Payment{
			{ID: "pay-1", Amount: moneyBRL(100), Sequence: 1},
			{ID: "pay-2", Amount: moneyBRL(50), Sequence: 2},
		}, nil)

		_, err := uc.ListPayments(context.Background(), "pur-1")
		if !errors.Is(err, entities.ErrLedgerInvariant) {
			t.Fatalf("expected ErrLedgerInvariant, got %v", err)
		}
	})
}

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hishabkitab/backend/internal/domain"
	"github.com/hishabkitab/backend/internal/usecase"
	"github.com/hishabkitab/backend/internal/usecase/mocks"
)

func TestCustomerUseCase_CreateCustomer(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		input     usecase.CreateCustomerInput
		setup     func(*mocks.MockCustomerRepository)
		wantErr   error
		wantName  string
		wantPhone string
	}{
		{
			name:  "creates customer with trimmed fields",
			input: usecase.CreateCustomerInput{Name: "  Rahim Store ", Mobile: "017 1234 5678"},
			setup: func(repo *mocks.MockCustomerRepository) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantName:  "Rahim Store",
			wantPhone: "01712345678",
		},
		{
			name:    "rejects empty name",
			input:   usecase.CreateCustomerInput{Name: " "},
			setup:   func(*mocks.MockCustomerRepository) {},
			wantErr: domain.ErrInvalidName,
		},
		{
			name:    "rejects bad mobile",
			input:   usecase.CreateCustomerInput{Name: "Karim", Mobile: "n/a"},
			setup:   func(*mocks.MockCustomerRepository) {},
			wantErr: domain.ErrInvalidMobile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			customerRepo := mocks.NewMockCustomerRepository(ctrl)
			entryRepo := mocks.NewMockLedgerEntryRepository(ctrl)
			tt.setup(customerRepo)

			uc := usecase.NewCustomerUseCase(customerRepo, entryRepo, &sequenceIDs{}, fixedClock{now}, reporting)
			customer, err := uc.CreateCustomer(context.Background(), ownerID, tt.input)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantName, customer.Name)
			assert.Equal(t, tt.wantPhone, customer.Mobile)
			assert.Equal(t, ownerID, customer.OwnerID)
			assert.Equal(t, now, customer.CreatedAt)
			assert.NotEmpty(t, customer.ID)
		})
	}
}

func TestCustomerUseCase_ListCustomers(t *testing.T) {
	ctrl := gomock.NewController(t)
	customerRepo := mocks.NewMockCustomerRepository(ctrl)
	entryRepo := mocks.NewMockLedgerEntryRepository(ctrl)

	customers := []*domain.Customer{
		{ID: "c1", OwnerID: ownerID, Name: "Asha"},
		{ID: "c2", OwnerID: ownerID, Name: "Bilal"},
		{ID: "c3", OwnerID: ownerID, Name: "Chitra"},
	}

	customerRepo.EXPECT().List(gomock.Any(), ownerID, 50, 0).Return(customers, nil)
	entryRepo.EXPECT().ListByOwner(gomock.Any(), ownerID).Return([]*domain.LedgerEntry{
		{CustomerID: "c1", Direction: domain.LedgerDebit, Amount: dec("500")},
		{CustomerID: "c1", Direction: domain.LedgerCredit, Amount: dec("200")},
		{CustomerID: "c2", Direction: domain.LedgerCredit, Amount: dec("75.50")},
	}, nil)

	uc := usecase.NewCustomerUseCase(customerRepo, entryRepo, &sequenceIDs{}, nil, reporting)
	list, err := uc.ListCustomers(context.Background(), ownerID, usecase.ListCustomersInput{})
	require.NoError(t, err)
	require.Len(t, list.Customers, 3)

	assert.True(t, list.Customers[0].Balance.Equal(dec("300")))
	assert.Equal(t, "You will get ₹300", list.Customers[0].Label)
	assert.True(t, list.Customers[1].Balance.Equal(dec("-75.50")))
	assert.Equal(t, "You will give ₹75.50", list.Customers[1].Label)
	assert.True(t, list.Customers[2].Balance.IsZero())
	assert.Equal(t, "Settled", list.Customers[2].Label)

	assert.True(t, list.YouWillGet.Equal(dec("300")))
	assert.True(t, list.YouWillGive.Equal(dec("75.50")))
}

func TestCustomerUseCase_DeleteCustomer_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	customerRepo := mocks.NewMockCustomerRepository(ctrl)
	customerRepo.EXPECT().Delete(gomock.Any(), ownerID, "missing").Return(domain.ErrCustomerNotFound)

	uc := usecase.NewCustomerUseCase(customerRepo, mocks.NewMockLedgerEntryRepository(ctrl), &sequenceIDs{}, nil, reporting)
	err := uc.DeleteCustomer(context.Background(), ownerID, "missing")

	if !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
}

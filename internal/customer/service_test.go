package customer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/ledger/internal/apperr"
	"github.com/MrJamesThe3rd/ledger/internal/customer"
	"github.com/MrJamesThe3rd/ledger/internal/page"
)

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    customer.CreateParams
		setupMock func(m *customer.MockRepository)
		verify    func(t *testing.T, c *customer.Customer)
		wantErr   func(err error) bool
	}

	tests := []testCase{
		{
			name:   "DefaultsCountry",
			params: customer.CreateParams{Name: "Al Khaleej Metals", Email: "sales@khaleej.sa"},
			setupMock: func(m *customer.MockRepository) {
				m.EXPECT().
					CreateCustomer(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *customer.Customer) error {
						c.ID = 1
						return nil
					})
			},
			verify: func(t *testing.T, c *customer.Customer) {
				assert.Equal(t, int64(1), c.ID)
				assert.Equal(t, customer.DefaultCountry, c.Country)
			},
		},
		{
			name:   "KeepsCountry",
			params: customer.CreateParams{Name: "Gulf Scrap", Email: "info@gulfscrap.ae", Country: "UAE"},
			setupMock: func(m *customer.MockRepository) {
				m.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).Return(nil)
			},
			verify: func(t *testing.T, c *customer.Customer) {
				assert.Equal(t, "UAE", c.Country)
			},
		},
		{
			name:    "MalformedEmail",
			params:  customer.CreateParams{Name: "Nobody", Email: "not-an-email"},
			wantErr: apperr.IsValidation,
		},
		{
			name:    "MissingName",
			params:  customer.CreateParams{Email: "a@b.sa"},
			wantErr: apperr.IsValidation,
		},
		{
			name:   "DuplicateEmail",
			params: customer.CreateParams{Name: "Dup", Email: "dup@b.sa"},
			setupMock: func(m *customer.MockRepository) {
				m.EXPECT().
					CreateCustomer(gomock.Any(), gomock.Any()).
					Return(&apperr.ConflictError{Entity: "customer", Constraint: "customers_email_key"})
			},
			wantErr: apperr.IsConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := customer.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := customer.NewService(repo)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr != nil {
				assert.True(t, tt.wantErr(err), "unexpected error: %v", err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			tt.verify(t, got)
		})
	}
}

func TestService_Update(t *testing.T) {
	t.Run("PassesParams", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := customer.NewMockRepository(ctrl)
		svc := customer.NewService(repo)

		city := "Dammam"
		repo.EXPECT().
			UpdateCustomer(gomock.Any(), int64(4), customer.UpdateParams{City: &city}).
			Return(&customer.Customer{ID: 4, City: city}, nil)

		got, err := svc.Update(context.Background(), 4, customer.UpdateParams{City: &city})
		require.NoError(t, err)
		assert.Equal(t, "Dammam", got.City)
	})

	t.Run("InvalidEmail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := customer.NewService(customer.NewMockRepository(ctrl))

		bad := "nope"
		_, err := svc.Update(context.Background(), 4, customer.UpdateParams{Email: &bad})
		assert.True(t, apperr.IsValidation(err))
	})

	t.Run("EmptyName", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := customer.NewService(customer.NewMockRepository(ctrl))

		empty := ""
		_, err := svc.Update(context.Background(), 4, customer.UpdateParams{Name: &empty})
		assert.True(t, apperr.IsValidation(err))
	})
}

func TestUpdateParams_Apply(t *testing.T) {
	c := &customer.Customer{ID: 1, Name: "Old", Email: "old@b.sa", Country: customer.DefaultCountry}
	name := "New"

	customer.UpdateParams{Name: &name}.Apply(c)

	assert.Equal(t, &customer.Customer{ID: 1, Name: "New", Email: "old@b.sa", Country: customer.DefaultCountry}, c)
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := customer.NewMockRepository(ctrl)
	svc := customer.NewService(repo)

	repo.EXPECT().ListCustomers(gomock.Any(), page.Page{Skip: 0, Limit: 2}).Return([]*customer.Customer{{ID: 1}, {ID: 2}}, nil)

	got, err := svc.List(context.Background(), page.Page{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	_, err = svc.List(context.Background(), page.Page{Limit: -1})
	assert.True(t, apperr.IsValidation(err))
}

func TestService_Delete(t *testing.T) {
	tests := []struct {
		name    string
		ret     bool
		retErr  error
		want    bool
		wantErr bool
	}{
		{name: "Existing", ret: true, want: true},
		{name: "Absent", ret: false, want: false},
		{name: "StillReferenced", retErr: &apperr.ConflictError{Entity: "customer"}, wantErr: true},
		{name: "StoreFailure", retErr: errors.New("db error"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := customer.NewMockRepository(ctrl)
			svc := customer.NewService(repo)

			repo.EXPECT().DeleteCustomer(gomock.Any(), int64(7)).Return(tt.ret, tt.retErr)

			got, err := svc.Delete(context.Background(), 7)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

package accountservice

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/swiftpay/swiftpay/internal/domain"
	"github.com/swiftpay/swiftpay/pkg/passpkg"
	"github.com/swiftpay/swiftpay/pkg/randompkg"
)

func TestCreate(t *testing.T) {
	testCases := []struct {
		name          string
		role          string
		pin           string
		buildStubs    func(repo *MockRepo)
		checkResponse func(res domain.Account, err error)
	}{
		{
			name: "Invalid role",
			role: "superuser",
			pin:  "123456",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(res domain.Account, err error) {
				require.Empty(t, res)
				require.EqualError(t, err, domain.ErrInvalidRole.Error())
			},
		},
		{
			name: "PIN too short",
			role: domain.RoleUser,
			pin:  "1234",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(res domain.Account, err error) {
				require.Empty(t, res)
				require.EqualError(t, err, domain.ErrInvalidPINFormat.Error())
			},
		},
		{
			name: "PIN not numeric",
			role: domain.RoleUser,
			pin:  "12345a",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(res domain.Account, err error) {
				require.Empty(t, res)
				require.EqualError(t, err, domain.ErrInvalidPINFormat.Error())
			},
		},
		{
			name: "User gets user seed balance",
			role: domain.RoleUser,
			pin:  "123456",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Times(1).
					DoAndReturn(func(_ context.Context, arg domain.CreateAccountParams) (domain.Account, error) {
						require.Equal(t, domain.UserSeedBalance, arg.Balance)
						require.NotEmpty(t, arg.HashedPIN)
						require.NoError(t, passpkg.Check("123456", arg.HashedPIN))

						return domain.Account{Role: arg.Role, Balance: arg.Balance}, nil
					})
			},
			checkResponse: func(res domain.Account, err error) {
				require.NoError(t, err)
				require.Equal(t, domain.UserSeedBalance, res.Balance)
			},
		},
		{
			name: "Agent gets agent seed balance",
			role: domain.RoleAgent,
			pin:  "123456",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Times(1).
					DoAndReturn(func(_ context.Context, arg domain.CreateAccountParams) (domain.Account, error) {
						require.Equal(t, domain.AgentSeedBalance, arg.Balance)

						return domain.Account{Role: arg.Role, Balance: arg.Balance}, nil
					})
			},
			checkResponse: func(res domain.Account, err error) {
				require.NoError(t, err)
				require.Equal(t, domain.AgentSeedBalance, res.Balance)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			accountRepo := NewMockRepo(ctrl)
			tc.buildStubs(accountRepo)

			accountService := New(accountRepo)

			res, err := accountService.Create(context.Background(),
				randompkg.Name(), randompkg.Email(), randompkg.PhoneNumber(),
				randompkg.NID(), tc.pin, tc.role)

			tc.checkResponse(res, err)
		})
	}
}

func TestLogin(t *testing.T) {
	testPIN := randompkg.PIN()
	testDevice := "device-1"

	hashedPIN, err := passpkg.Hash(testPIN)
	require.NoError(t, err)

	baseAccount := domain.Account{
		ID:        1,
		Email:     randompkg.Email(),
		HashedPIN: hashedPIN,
		Role:      domain.RoleUser,
		Balance:   domain.UserSeedBalance,
	}

	testCases := []struct {
		name          string
		pin           string
		deviceID      string
		buildStubs    func(repo *MockRepo)
		checkResponse func(res domain.Account, err error)
	}{
		{
			name:     "Account not found",
			pin:      testPIN,
			deviceID: testDevice,
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					GetByEmail(gomock.Any(), gomock.Eq(baseAccount.Email)).
					Times(1).
					Return(domain.Account{}, domain.ErrAccountNotFound)
			},
			checkResponse: func(res domain.Account, err error) {
				require.Empty(t, res)
				require.EqualError(t, err, domain.ErrAccountNotFound.Error())
			},
		},
		{
			name:     "Blocked account",
			pin:      testPIN,
			deviceID: testDevice,
			buildStubs: func(repo *MockRepo) {
				blocked := baseAccount
				blocked.Blocked = true

				repo.EXPECT().
					GetByEmail(gomock.Any(), gomock.Eq(baseAccount.Email)).
					Times(1).
					Return(blocked, nil)
			},
			checkResponse: func(res domain.Account, err error) {
				require.Empty(t, res)
				require.EqualError(t, err, domain.ErrAccountBlocked.Error())
			},
		},
		{
			name:     "Wrong PIN",
			pin:      "000000",
			deviceID: testDevice,
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					GetByEmail(gomock.Any(), gomock.Eq(baseAccount.Email)).
					Times(1).
					Return(baseAccount, nil)
			},
			checkResponse: func(res domain.Account, err error) {
				require.Empty(t, res)
				require.EqualError(t, err, domain.ErrInvalidPIN.Error())
			},
		},
		{
			name:     "Unverified agent",
			pin:      testPIN,
			deviceID: testDevice,
			buildStubs: func(repo *MockRepo) {
				agent := baseAccount
				agent.Role = domain.RoleAgent
				agent.Verified = false

				repo.EXPECT().
					GetByEmail(gomock.Any(), gomock.Eq(baseAccount.Email)).
					Times(1).
					Return(agent, nil)
			},
			checkResponse: func(res domain.Account, err error) {
				require.Empty(t, res)
				require.EqualError(t, err, domain.ErrAgentNotVerified.Error())
			},
		},
		{
			name:     "Device conflict",
			pin:      testPIN,
			deviceID: "device-2",
			buildStubs: func(repo *MockRepo) {
				active := baseAccount
				active.DeviceID = testDevice

				repo.EXPECT().
					GetByEmail(gomock.Any(), gomock.Eq(baseAccount.Email)).
					Times(1).
					Return(active, nil)
			},
			checkResponse: func(res domain.Account, err error) {
				require.Empty(t, res)
				require.EqualError(t, err, domain.ErrDeviceConflict.Error())
			},
		},
		{
			name:     "Same device logs in again",
			pin:      testPIN,
			deviceID: testDevice,
			buildStubs: func(repo *MockRepo) {
				active := baseAccount
				active.DeviceID = testDevice

				repo.EXPECT().
					GetByEmail(gomock.Any(), gomock.Eq(baseAccount.Email)).
					Times(1).
					Return(active, nil)
				repo.EXPECT().
					SetDeviceID(gomock.Any(), gomock.Eq(baseAccount.Email), gomock.Eq(testDevice)).
					Times(1).
					Return(nil)
			},
			checkResponse: func(res domain.Account, err error) {
				require.NoError(t, err)
				require.Equal(t, testDevice, res.DeviceID)
			},
		},
		{
			name:     "Admin exempt from device rule",
			pin:      testPIN,
			deviceID: "device-2",
			buildStubs: func(repo *MockRepo) {
				admin := baseAccount
				admin.Role = domain.RoleAdmin
				admin.DeviceID = testDevice

				repo.EXPECT().
					GetByEmail(gomock.Any(), gomock.Eq(baseAccount.Email)).
					Times(1).
					Return(admin, nil)
			},
			checkResponse: func(res domain.Account, err error) {
				require.NoError(t, err)
				require.Equal(t, domain.RoleAdmin, res.Role)
			},
		},
		{
			name:     "First login stores device",
			pin:      testPIN,
			deviceID: testDevice,
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					GetByEmail(gomock.Any(), gomock.Eq(baseAccount.Email)).
					Times(1).
					Return(baseAccount, nil)
				repo.EXPECT().
					SetDeviceID(gomock.Any(), gomock.Eq(baseAccount.Email), gomock.Eq(testDevice)).
					Times(1).
					Return(nil)
			},
			checkResponse: func(res domain.Account, err error) {
				require.NoError(t, err)
				require.Equal(t, testDevice, res.DeviceID)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			accountRepo := NewMockRepo(ctrl)
			tc.buildStubs(accountRepo)

			accountService := New(accountRepo)

			res, err := accountService.Login(context.Background(),
				baseAccount.Email, tc.pin, tc.deviceID)

			tc.checkResponse(res, err)
		})
	}
}

func TestCheckPIN(t *testing.T) {
	testPIN := randompkg.PIN()

	hashedPIN, err := passpkg.Hash(testPIN)
	require.NoError(t, err)

	account := domain.Account{Email: randompkg.Email(), HashedPIN: hashedPIN}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountRepo := NewMockRepo(ctrl)
	accountRepo.EXPECT().
		GetByEmail(gomock.Any(), gomock.Eq(account.Email)).
		Times(2).
		Return(account, nil)

	accountService := New(accountRepo)

	got, err := accountService.CheckPIN(context.Background(), account.Email, testPIN)
	require.NoError(t, err)
	require.Equal(t, account.Email, got.Email)

	_, err = accountService.CheckPIN(context.Background(), account.Email, "000000")
	require.EqualError(t, err, domain.ErrInvalidPIN.Error())
}

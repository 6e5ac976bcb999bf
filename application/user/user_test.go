package user_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	appuser "github.com/muhammadheryan/fw-development/application/user"
	"github.com/muhammadheryan/fw-development/cmd/config"
	"github.com/muhammadheryan/fw-development/constant"
	redismocks "github.com/muhammadheryan/fw-development/mocks/repository/redis"
	"github.com/muhammadheryan/fw-development/model"
	redisrepo "github.com/muhammadheryan/fw-development/repository/redis"
	cerr "github.com/muhammadheryan/fw-development/utils/errors"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret-key-for-jwt-signing"

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:         testSecret,
			JWTExpiration:     time.Hour,
			SessionExpTime:    time.Hour,
			AdminUsername:     "admin",
			AdminName:         "FW Development",
			AdminPasswordHash: string(hash),
		},
	}
}

func isAdminSession(s *model.Session) bool {
	return s.ID != "" && s.Username == "admin" && s.Role == constant.RoleAdmin
}

func TestUserApp_Login(t *testing.T) {
	type fields struct {
		config    *config.Config
		redisRepo *redismocks.RedisRepository
	}
	type args struct {
		ctx context.Context
		req *model.LoginRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success",
			fields: fields{
				config:    testConfig(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{Username: "admin", Password: "password123"},
			},
			mockCall: func(f fields) {
				f.redisRepo.
					On("SetSession", mock.Anything, mock.MatchedBy(isAdminSession), time.Hour).
					Return(nil).
					Once()
			},
		},
		{
			name: "error: wrong password",
			fields: fields{
				config:    testConfig(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{Username: "admin", Password: "wrong"},
			},
			mockCall: func(f fields) {},
			wantErr:  true,
			errCode:  constant.ErrInvalidPassword,
		},
		{
			name: "error: unknown username",
			fields: fields{
				config:    testConfig(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{Username: "root", Password: "password123"},
			},
			mockCall: func(f fields) {},
			wantErr:  true,
			errCode:  constant.ErrUnauthorize,
		},
		{
			name: "error: missing password",
			fields: fields{
				config:    testConfig(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{Username: "admin"},
			},
			mockCall: func(f fields) {},
			wantErr:  true,
			errCode:  constant.ErrMissingFields,
		},
		{
			name: "error: admin not configured",
			fields: fields{
				config:    &config.Config{Auth: config.AuthConfig{AdminUsername: "admin", JWTSecret: testSecret}},
				redisRepo: redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{Username: "admin", Password: "password123"},
			},
			mockCall: func(f fields) {},
			wantErr:  true,
			errCode:  constant.ErrUnauthorize,
		},
		{
			name: "error: session store down",
			fields: fields{
				config:    testConfig(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{Username: "admin", Password: "password123"},
			},
			mockCall: func(f fields) {
				f.redisRepo.
					On("SetSession", mock.Anything, mock.Anything, time.Hour).
					Return(errors.New("connection refused")).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appuser.NewUserApp(tt.fields.config, tt.fields.redisRepo)

			got, err := app.Login(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Login() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got.Token == "" || got.Username != "admin" || got.Name != "FW Development" {
				t.Fatalf("Login() = %+v", got)
			}
			if got.ExpiresAt.Before(time.Now()) {
				t.Fatalf("Login() ExpiresAt = %v, want future", got.ExpiresAt)
			}
		})
	}
}

func signToken(t *testing.T, secret string, method jwt.SigningMethod, claims jwt.RegisteredClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func TestUserApp_ValidateToken(t *testing.T) {
	now := time.Now()
	valid := jwt.RegisteredClaims{
		Subject:   "admin",
		ID:        "jti-1",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}
	session := &model.Session{ID: "jti-1", Username: "admin", Role: constant.RoleAdmin}

	tests := []struct {
		name     string
		token    func(t *testing.T) string
		mockCall func(r *redismocks.RedisRepository)
		want     *model.Session
		wantErr  bool
	}{
		{
			name:  "valid token and session",
			token: func(t *testing.T) string { return signToken(t, testSecret, jwt.SigningMethodHS256, valid) },
			mockCall: func(r *redismocks.RedisRepository) {
				r.On("GetSession", mock.Anything, "jti-1").Return(session, nil).Once()
			},
			want: session,
		},
		{
			name:     "wrong secret",
			token:    func(t *testing.T) string { return signToken(t, "other", jwt.SigningMethodHS256, valid) },
			mockCall: func(r *redismocks.RedisRepository) {},
			wantErr:  true,
		},
		{
			name: "expired",
			token: func(t *testing.T) string {
				c := valid
				c.ExpiresAt = jwt.NewNumericDate(now.Add(-time.Minute))
				return signToken(t, testSecret, jwt.SigningMethodHS256, c)
			},
			mockCall: func(r *redismocks.RedisRepository) {},
			wantErr:  true,
		},
		{
			name:     "other signing method",
			token:    func(t *testing.T) string { return signToken(t, testSecret, jwt.SigningMethodHS512, valid) },
			mockCall: func(r *redismocks.RedisRepository) {},
			wantErr:  true,
		},
		{
			name: "missing jti",
			token: func(t *testing.T) string {
				c := valid
				c.ID = ""
				return signToken(t, testSecret, jwt.SigningMethodHS256, c)
			},
			mockCall: func(r *redismocks.RedisRepository) {},
			wantErr:  true,
		},
		{
			name:  "session logged out",
			token: func(t *testing.T) string { return signToken(t, testSecret, jwt.SigningMethodHS256, valid) },
			mockCall: func(r *redismocks.RedisRepository) {
				r.On("GetSession", mock.Anything, "jti-1").Return(nil, redisrepo.ErrNil).Once()
			},
			wantErr: true,
		},
		{
			name:  "session of another user",
			token: func(t *testing.T) string { return signToken(t, testSecret, jwt.SigningMethodHS256, valid) },
			mockCall: func(r *redismocks.RedisRepository) {
				r.On("GetSession", mock.Anything, "jti-1").Return(&model.Session{ID: "jti-1", Username: "someone"}, nil).Once()
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			redisRepo := redismocks.NewRedisRepository(t)
			tt.mockCall(redisRepo)
			app := appuser.NewUserApp(testConfig(t), redisRepo)

			got, err := app.ValidateToken(context.Background(), tt.token(t))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateToken() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Fatalf("ValidateToken() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUserApp_Logout(t *testing.T) {
	redisRepo := redismocks.NewRedisRepository(t)
	app := appuser.NewUserApp(testConfig(t), redisRepo)

	redisRepo.On("ClearSession", mock.Anything, "jti-1").Return(nil).Once()
	if err := app.Logout(context.Background(), "jti-1"); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}

	redisRepo.On("ClearSession", mock.Anything, "jti-2").Return(errors.New("connection refused")).Once()
	if !cerr.Is(app.Logout(context.Background(), "jti-2"), constant.ErrInternal) {
		t.Fatal("Logout() want ErrInternal on store failure")
	}

	if !cerr.Is(app.Logout(context.Background(), ""), constant.ErrUnauthorize) {
		t.Fatal("Logout() want ErrUnauthorize without session id")
	}
}

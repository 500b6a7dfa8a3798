package logic

import (
	"crypto/ed25519"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"nilk-backend/config"
	"nilk-backend/dao"
	"nilk-backend/economy"
	"nilk-backend/models"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"github.com/mr-tron/base58"
)

// UserLogic handles login and profile-related business logic
type UserLogic struct {
	profileDAO *dao.ProfileDAO
}

func NewUserLogic(
	profileDAO *dao.ProfileDAO,
) *UserLogic {
	return &UserLogic{
		profileDAO: profileDAO,
	}
}

func (l *UserLogic) verifySignature(walletAddress, message, signature string) (bool, error) {
	pubKeyBytes, err := base58.Decode(walletAddress)
	if err != nil {
		return false, err
	}
	if len(pubKeyBytes) != 32 {
		return false, fmt.Errorf("ed25519: bad public key length: %d", len(pubKeyBytes))
	}

	sigBytes, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return false, err
	}
	msgBytes := []byte(message)

	return ed25519.Verify(pubKeyBytes, msgBytes, sigBytes), nil
}

func (l *UserLogic) generateJWT(walletAddress string) (string, time.Time, error) {
	expireAt := time.Now().Add(time.Duration(config.GlobalConfig.Auth.ExpHour) * time.Hour)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"wallet_address": walletAddress,
		"exp":            expireAt.Unix(),
	})
	tokenString, err := token.SignedString([]byte(config.GlobalConfig.Auth.Secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expireAt, nil
}

// Login verifies the wallet signature, lazily creates the profile, settles
// passive accrual for the offline window and issues a session token. The
// returned profile reflects the accrual.
func (l *UserLogic) Login(walletAddress, message, signature string) (*models.Profile, string, time.Time, error) {
	isValid, err := l.verifySignature(walletAddress, message, signature)
	if err != nil || !isValid {
		return nil, "", time.Time{}, errors.New("invalid signature")
	}

	if _, err := l.profileDAO.GetOrCreate(walletAddress); err != nil {
		return nil, "", time.Time{}, err
	}

	now := time.Now()
	profile, err := l.profileDAO.Mutate(walletAddress, func(p *models.Profile) (*models.EconomicEvent, error) {
		economy.ExpireFlask(p, now)
		o := economy.PassiveAccrual(p, now, config.GlobalConfig.Game.PerCowDailyRate)
		if o == nil {
			// LastActiveAt still advanced; a no-op accrual is not logged.
			return nil, nil
		}
		return &models.EconomicEvent{
			ID:            uuid.New(),
			WalletAddress: walletAddress,
			EventType:     o.EventType,
			Amount:        o.Amount,
			Currency:      o.Currency,
			Description:   o.Description,
		}, nil
	})
	if err != nil {
		return nil, "", time.Time{}, err
	}

	token, expireAt, err := l.generateJWT(walletAddress)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	return profile, token, expireAt, nil
}

// GetProfile retrieves the wallet's profile after persisting any lapsed buff
func (l *UserLogic) GetProfile(walletAddress string) (*models.Profile, error) {
	if err := l.profileDAO.ExpireFlask(walletAddress, time.Now()); err != nil {
		return nil, err
	}
	return l.profileDAO.GetByWallet(walletAddress)
}

// UpdateCows replaces the wallet's herd via the client-trusted sync path
func (l *UserLogic) UpdateCows(walletAddress string, cows []models.Cow) error {
	return l.profileDAO.UpdateCows(walletAddress, cows)
}

package service

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// CredentialEncoder turns a supplied password into the stored credential.
type CredentialEncoder interface {
	Encode(password string) (string, error)
}

// PlainCredentials stores the password exactly as supplied.
type PlainCredentials struct{}

func (PlainCredentials) Encode(password string) (string, error) {
	return password, nil
}

type BcryptCredentials struct {
	Cost int
}

func (b BcryptCredentials) Encode(password string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func NewCredentialEncoder(name string) (CredentialEncoder, error) {
	switch name {
	case "", "plain":
		return PlainCredentials{}, nil
	case "bcrypt":
		return BcryptCredentials{Cost: bcrypt.DefaultCost}, nil
	default:
		return nil, fmt.Errorf("unknown credential encoder %q", name)
	}
}

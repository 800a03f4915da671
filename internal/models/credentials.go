package models

import (
	"strings"

	"gorm.io/gorm"
)

// Credentials is the single local user record.
//
// The password is stored in plaintext. This mirrors the storage of the
// original app and is a known security gap, the backend is meant for a
// single user on a local device.
type Credentials struct {
	DefaultModel
	Email    string
	Password string
}

func (c *Credentials) BeforeCreate(tx *gorm.DB) error {
	err := c.DefaultModel.BeforeCreate(tx)
	if err != nil {
		return err
	}

	// Only one user record may exist.
	var count int64
	err = tx.Model(&Credentials{}).Count(&count).Error
	if err != nil {
		return err
	}

	if count > 0 {
		return ErrCredentialsExist
	}

	return nil
}

func (c *Credentials) BeforeSave(_ *gorm.DB) error {
	c.Email = strings.TrimSpace(c.Email)

	return nil
}

func (c *Credentials) AfterSave(_ *gorm.DB) error {
	if c.Email == "" || c.Password == "" {
		return ErrCredentialsIncomplete
	}

	return nil
}

// Verify reports whether the given email and password match the stored
// record. It fails with ErrResourceNotFound when no record exists.
func Verify(email, password string) (bool, error) {
	var credentials Credentials
	err := DB.First(&credentials).Error
	if err != nil {
		return false, err
	}

	return credentials.Email == strings.TrimSpace(email) && credentials.Password == password, nil
}

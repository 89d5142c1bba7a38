package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"yumi/domain"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const DefaultPassword = "secret123"

var seq int64

// CreateUser inserts an active user with DefaultPassword.
func CreateUser(t testing.TB, db *gorm.DB, role domain.Role) *domain.User {
	t.Helper()

	n := atomic.AddInt64(&seq, 1)
	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.MinCost)
	require.NoError(t, err)

	u := &domain.User{
		Name:         fmt.Sprintf("%s %d", role, n),
		Email:        fmt.Sprintf("%s%d@yumi.test", role, n),
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func Date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

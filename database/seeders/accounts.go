package seeders

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/ordermanager/app/dto"
	"github.com/shashiranjanraj/ordermanager/app/services"
	"github.com/shashiranjanraj/ordermanager/config"
	"github.com/shashiranjanraj/ordermanager/pkg/apperr"
	"github.com/shashiranjanraj/ordermanager/pkg/rbac"
)

func init() {
	Register("accounts", seedAccounts)
}

// seedAccounts creates the ADMIN and MANAGER logins from config. Existing
// emails are left alone.
func seedAccounts(ctx context.Context, db *gorm.DB) error {
	customers := services.NewCustomerService(db)
	born := dto.NewDate(time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC))

	accounts := []struct {
		register dto.Register
		role     rbac.Role
	}{
		{dto.Register{Email: config.AdminEmail(), Password: config.AdminPassword(), FirstName: "Admin", LastName: "Admin", BornAt: born}, rbac.RoleAdmin},
		{dto.Register{Email: config.ManagerEmail(), Password: config.ManagerPassword(), FirstName: "Manager", LastName: "Manager", BornAt: born}, rbac.RoleManager},
	}
	for _, a := range accounts {
		_, err := customers.CreateWithRole(ctx, a.register, a.role)
		if err != nil && !errors.Is(err, apperr.ErrConflict) {
			return err
		}
	}
	return nil
}

package handlers_test

import (
	"marina-guard-backend/internal/database/models"
	"marina-guard-backend/internal/service"

	"github.com/google/uuid"
)

var (
	guardCaller      = service.Caller{UserID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Role: models.RoleGuard}
	supervisorCaller = service.Caller{UserID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Role: models.RoleSupervisor}
	adminCaller      = service.Caller{UserID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Role: models.RoleAdmin}
)

func strPtr(s string) *string { return &s }

package service

import (
	"github.com/MKhiriev/go-library-reserve/internal/config"
	"github.com/MKhiriev/go-library-reserve/internal/logger"
	"github.com/MKhiriev/go-library-reserve/internal/store"
	"github.com/MKhiriev/go-library-reserve/internal/utils"
	"github.com/MKhiriev/go-library-reserve/internal/validators"
)

type Services struct {
	UserService            UserService
	ProfileService         ProfileService
	ReservationService     ReservationService
	BookService            BookService
	BookReservationService BookReservationService
	BootstrapService       BootstrapService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	validator := validators.NewEntityValidator()
	hasher := utils.NewPasswordHasher(cfg.App.BcryptCost)

	return &Services{
		UserService:            NewUserService(storages.UserRepository, validator, hasher, logger),
		ProfileService:         NewProfileService(storages.UserProfileRepository, validator, logger),
		ReservationService:     NewReservationService(storages.ReservationRepository, validator, logger),
		BookService:            NewBookService(storages.BookRepository, validator, logger),
		BookReservationService: NewBookReservationService(storages.BookReservationRepository, validator, logger),
		BootstrapService: NewBootstrapService(
			storages.UserRepository,
			storages.SchemaInspector,
			validator,
			hasher,
			utils.NewSecretGenerator(),
			cfg.App.Admin,
			logger,
		),
	}
}

package store

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-library-reserve/internal/logger"
	"github.com/MKhiriev/go-library-reserve/models"
)

type reservationRepository struct {
	logger *logger.Logger
	db     *DB
	users  UserRepository
}

// NewReservationRepository constructs a [ReservationRepository]. users is
// used to load the reserving user in FindReservationWithUser.
func NewReservationRepository(db *DB, users UserRepository, logger *logger.Logger) ReservationRepository {
	logger.Debug().Msg("creating reservation repository")
	return &reservationRepository{
		db:     db,
		users:  users,
		logger: logger,
	}
}

// CreateReservation inserts a room reservation. Overlaps and start/end
// ordering are not checked.
func (r *reservationRepository) CreateReservation(ctx context.Context, reservation models.Reservation) (models.Reservation, error) {
	log := logger.FromContext(ctx)

	now := r.db.now()
	reservation.CreatedAt, reservation.UpdatedAt = now, now

	if err := get(ctx, r.db, &reservation.ID, buildInsertReservationQuery(r.db.builder(), reservation)); err != nil {
		log.Err(err).Str("func", "*reservationRepository.CreateReservation").Msg("error inserting reservation")
		return models.Reservation{}, r.db.translate(err)
	}

	return reservation, nil
}

func (r *reservationRepository) FindReservationByID(ctx context.Context, id int64) (models.Reservation, error) {
	log := logger.FromContext(ctx)

	var reservation models.Reservation
	if err := get(ctx, r.db, &reservation, buildSelectReservationQuery(r.db.builder()).Where(sq.Eq{"id": id})); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Reservation{}, ErrReservationNotFound
		}
		log.Err(err).Str("func", "*reservationRepository.FindReservationByID").Msg("error selecting reservation")
		return models.Reservation{}, r.db.translate(err)
	}

	return reservation, nil
}

// FindReservationWithUser sets User when the reservation references one.
func (r *reservationRepository) FindReservationWithUser(ctx context.Context, id int64) (models.Reservation, error) {
	reservation, err := r.FindReservationByID(ctx, id)
	if err != nil {
		return models.Reservation{}, err
	}
	if reservation.UserID == nil {
		return reservation, nil
	}

	user, err := r.users.FindUserByID(ctx, *reservation.UserID)
	if err != nil {
		return models.Reservation{}, err
	}
	reservation.User = &user

	return reservation, nil
}

func (r *reservationRepository) ListReservations(ctx context.Context, filter models.ReservationFilter) ([]models.Reservation, error) {
	log := logger.FromContext(ctx)

	reservations := make([]models.Reservation, 0)
	if err := selectAll(ctx, r.db, &reservations, buildListReservationsQuery(r.db.builder(), filter)); err != nil {
		log.Err(err).Str("func", "*reservationRepository.ListReservations").Msg("error selecting reservations")
		return nil, r.db.translate(err)
	}

	return reservations, nil
}

func (r *reservationRepository) UpdateReservation(ctx context.Context, reservation models.Reservation) (models.Reservation, error) {
	log := logger.FromContext(ctx)

	reservation.UpdatedAt = r.db.now()

	affected, err := exec(ctx, r.db, buildUpdateReservationQuery(r.db.builder(), reservation))
	if err != nil {
		log.Err(err).Str("func", "*reservationRepository.UpdateReservation").Msg("error updating reservation")
		return models.Reservation{}, r.db.translate(err)
	}
	if affected == 0 {
		return models.Reservation{}, ErrReservationNotFound
	}

	return reservation, nil
}

func (r *reservationRepository) DeleteReservation(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	affected, err := exec(ctx, r.db, buildDeleteByIDQuery(r.db.builder(), reservationsTable, id))
	if err != nil {
		log.Err(err).Str("func", "*reservationRepository.DeleteReservation").Msg("error deleting reservation")
		return r.db.translate(err)
	}
	if affected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// internal/database/room.go
package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/codeuno/server/internal/models"
)

// InsertRoom creates the room row together with its admin's seat.
func InsertRoom(ctx context.Context, room *models.Room) error {
	return pgx.BeginTxFunc(ctx, DB, pgx.TxOptions{}, func(tx pgx.Tx) error {
		q := `
		INSERT INTO rooms (pin, name, admin_id, max_players, status)
		VALUES ($1, $2, $3, $4, $5)
		`
		if _, err := tx.Exec(ctx, q, room.PIN, room.Name, room.AdminID, room.MaxPlayers, room.Status); err != nil {
			return err
		}
		qp := `
		INSERT INTO room_participants (room_pin, user_id, seat_position)
		VALUES ($1, $2, 0)
		`
		_, err := tx.Exec(ctx, qp, room.PIN, room.AdminID)
		return err
	})
}

// GetRoom fetches a room by PIN.
func GetRoom(ctx context.Context, pin string) (*models.Room, error) {
	var r models.Room
	q := `SELECT pin, name, admin_id, max_players, status FROM rooms WHERE pin = $1`
	err := DB.QueryRow(ctx, q, pin).Scan(&r.PIN, &r.Name, &r.AdminID, &r.MaxPlayers, &r.Status)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// AddParticipant seats a user at the next free position.
func AddParticipant(ctx context.Context, pin string, userID uuid.UUID) error {
	q := `
	INSERT INTO room_participants (room_pin, user_id, seat_position)
	SELECT $1, $2, COALESCE(MAX(seat_position) + 1, 0)
	FROM room_participants WHERE room_pin = $1
	ON CONFLICT (room_pin, user_id) DO NOTHING
	`
	_, err := DB.Exec(ctx, q, pin, userID)
	return err
}

// FetchParticipants returns the ordered roster for a room. This is the
// list handed to the game controller at round start.
func FetchParticipants(ctx context.Context, pin string) ([]models.Participant, error) {
	q := `
	SELECT p.user_id, p.seat_position, u.username, u.language
	FROM room_participants p
	JOIN users u ON p.user_id = u.id
	WHERE p.room_pin = $1
	ORDER BY p.seat_position
	`
	rows, err := DB.Query(ctx, q, pin)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roster []models.Participant
	for rows.Next() {
		var part models.Participant
		if err := rows.Scan(&part.UserID, &part.Seat, &part.Username, &part.Language); err != nil {
			return nil, err
		}
		roster = append(roster, part)
	}
	return roster, rows.Err()
}

// UpdateRoomStatus flips the room's lifecycle state.
func UpdateRoomStatus(ctx context.Context, pin string, status models.RoomStatus) error {
	_, err := DB.Exec(ctx, `UPDATE rooms SET status = $2 WHERE pin = $1`, pin, status)
	return err
}

// StoreRoundResult persists the winner and per-player hand scores so
// multi-round matches can carry scores forward.
func StoreRoundResult(ctx context.Context, roundID uuid.UUID, pin string, winner uuid.UUID, scores map[uuid.UUID]int) error {
	return pgx.BeginTxFunc(ctx, DB, pgx.TxOptions{}, func(tx pgx.Tx) error {
		q := `
		INSERT INTO round_results (round_id, room_pin, winner_id)
		VALUES ($1, $2, $3)
		`
		if _, err := tx.Exec(ctx, q, roundID, pin, winner); err != nil {
			return err
		}
		qs := `
		INSERT INTO round_scores (round_id, user_id, hand_score)
		VALUES ($1, $2, $3)
		`
		for userID, score := range scores {
			if _, err := tx.Exec(ctx, qs, roundID, userID, score); err != nil {
				return err
			}
		}
		return nil
	})
}

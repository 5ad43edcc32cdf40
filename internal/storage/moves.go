package storage

import (
	"database/sql"
	"fmt"

	"github.com/cubekit/cubesim"
)

// MoveRecord represents a move in the database.
type MoveRecord struct {
	MoveID    int64
	SessionID string
	MoveIndex int
	Axis      string
	Layer     int
	Dir       int
	Notation  string
}

// Move converts the record back into an engine move.
func (mr MoveRecord) Move() (cubesim.Move, error) {
	axis, err := cubesim.ParseAxis(mr.Axis)
	if err != nil {
		return cubesim.Move{}, fmt.Errorf("bad axis %q in move %d: %w", mr.Axis, mr.MoveID, err)
	}
	return cubesim.Move{Axis: axis, Layer: mr.Layer, Dir: mr.Dir}, nil
}

// MoveRepository provides CRUD operations for moves.
type MoveRepository struct {
	db *DB
}

// NewMoveRepository creates a new move repository.
func NewMoveRepository(db *DB) *MoveRepository {
	return &MoveRepository{db: db}
}

// Create stores a single move.
func (r *MoveRepository) Create(sessionID string, moveIndex int, move cubesim.Move) (int64, error) {
	result, err := r.db.Exec(`
		INSERT INTO moves (session_id, move_index, axis, layer, dir, notation)
		VALUES (?, ?, ?, ?, ?, ?)
	`, sessionID, moveIndex, move.Axis.String(), move.Layer, move.Dir, move.Notation())

	if err != nil {
		return 0, fmt.Errorf("failed to create move: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get move ID: %w", err)
	}

	return id, nil
}

// CreateBatch stores a sequence of moves in a single transaction.
func (r *MoveRepository) CreateBatch(sessionID string, moves []cubesim.Move) error {
	return r.db.Transaction(func(tx *sql.Tx) error {
		for i, move := range moves {
			_, err := tx.Exec(`
				INSERT INTO moves (session_id, move_index, axis, layer, dir, notation)
				VALUES (?, ?, ?, ?, ?, ?)
			`, sessionID, i, move.Axis.String(), move.Layer, move.Dir, move.Notation())
			if err != nil {
				return fmt.Errorf("failed to create move %d: %w", i, err)
			}
		}
		return nil
	})
}

// GetBySession retrieves all moves for a session in order.
func (r *MoveRepository) GetBySession(sessionID string) ([]MoveRecord, error) {
	rows, err := r.db.Query(`
		SELECT move_id, session_id, move_index, axis, layer, dir, notation
		FROM moves
		WHERE session_id = ?
		ORDER BY move_index
	`, sessionID)

	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}
	defer rows.Close()

	var records []MoveRecord
	for rows.Next() {
		var m MoveRecord
		if err := rows.Scan(&m.MoveID, &m.SessionID, &m.MoveIndex, &m.Axis, &m.Layer, &m.Dir, &m.Notation); err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		records = append(records, m)
	}

	return records, rows.Err()
}

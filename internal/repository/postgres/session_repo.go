package postgres

import (
	"context"
	"encoding/json"

	"go-visa-diagnosis-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type sessionRepo struct {
	db *pgxpool.Pool
}

// NewSessionRepository returns the write-only diagnosis session sink.
func NewSessionRepository(db *pgxpool.Pool) domain.SessionRepository {
	return &sessionRepo{db: db}
}

func (r *sessionRepo) Create(ctx context.Context, session *domain.DiagnosisSession) error {
	applicantData, err := json.Marshal(session.ApplicantData)
	if err != nil {
		return err
	}
	resultData, err := json.Marshal(session.Result)
	if err != nil {
		return err
	}

	// Qualifications are mirrored into a text[] column so sessions can be
	// filtered by held certifications without unpacking the JSON payload.
	query := `INSERT INTO diagnosis_sessions (session_id, status, applicant_data, diagnosis_result, qualifications, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $6)`
	_, err = r.db.Exec(ctx, query,
		session.SessionID, session.Status, applicantData, resultData,
		pq.Array(session.ApplicantData.Qualifications), session.CreatedAt,
	)
	return err
}

/**
 * @description
 * This file contains the handler for the batch assignment import feed. An
 * external process splits assignment CSV files into rows and publishes one
 * message per row; each row is mapped onto the same assign operation the
 * interactive API uses, with no special bulk semantics.
 *
 * Key features:
 * - Parses a `userId,pbaNumber` CSV row from the message body.
 * - Routes the row through PaymentAccountService.Assign.
 * - Acks rows that were processed or permanently rejected (malformed input,
 *   business-rule failures), nacks and requeues only on infrastructure errors
 *   so a broken row cannot poison the queue.
 */
package app

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/lexref/pup-service/internal/domain"
)

// accountAssigner is the slice of PaymentAccountService the import handler
// depends on.
type accountAssigner interface {
	Assign(ctx context.Context, pbaNumber string, assignment domain.PaymentAccountAssignment) (*domain.ProfessionalUser, error)
}

// AssignmentImportHandler consumes assignment CSV rows from the import queue.
type AssignmentImportHandler struct {
	accounts accountAssigner
}

// NewAssignmentImportHandler creates a new AssignmentImportHandler.
func NewAssignmentImportHandler(accounts accountAssigner) *AssignmentImportHandler {
	return &AssignmentImportHandler{accounts: accounts}
}

// assignmentRow is one parsed line of an assignment import file.
type assignmentRow struct {
	UserID    string
	PbaNumber string
}

// HandleAssignmentRow processes a single import message. The returned bool is
// the ack decision: true acknowledges the message, false rejects and requeues.
func (h *AssignmentImportHandler) HandleAssignmentRow(body []byte) bool {
	row, err := parseAssignmentRow(body)
	if err != nil {
		log.Printf("Discarding malformed assignment row %q: %v", body, err)
		return true
	}

	ctx := context.Background()
	_, err = h.accounts.Assign(ctx, row.PbaNumber, domain.PaymentAccountAssignment{UserID: row.UserID})
	switch {
	case err == nil:
		log.Printf("Imported assignment of %s to user %s", row.PbaNumber, row.UserID)
		return true
	case errors.Is(err, ErrProfessionalUserDoesNotExist),
		errors.Is(err, ErrPaymentAccountDoesNotExist),
		errors.Is(err, ErrAccountAlreadyAssigned):
		// Business rejection: the row can never succeed, do not requeue.
		log.Printf("Rejected assignment of %s to user %s: %v", row.PbaNumber, row.UserID, err)
		return true
	default:
		log.Printf("Failed to import assignment of %s to user %s, requeueing: %v", row.PbaNumber, row.UserID, err)
		return false
	}
}

// parseAssignmentRow parses a `userId,pbaNumber` CSV line.
func parseAssignmentRow(body []byte) (assignmentRow, error) {
	record, err := csv.NewReader(bytes.NewReader(body)).Read()
	if err != nil {
		return assignmentRow{}, fmt.Errorf("reading csv row: %w", err)
	}
	if len(record) != 2 {
		return assignmentRow{}, fmt.Errorf("expected 2 fields, got %d", len(record))
	}

	row := assignmentRow{
		UserID:    strings.TrimSpace(record[0]),
		PbaNumber: strings.TrimSpace(record[1]),
	}
	if row.UserID == "" || row.PbaNumber == "" {
		return assignmentRow{}, errors.New("user id and pba number are required")
	}
	return row, nil
}

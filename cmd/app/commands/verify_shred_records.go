package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	auditDomain "github.com/allisson/keyshred/internal/audit/domain"
	auditUseCase "github.com/allisson/keyshred/internal/audit/usecase"
)

// RunVerifyShredRecords checks the signature of every shred record created in
// the given time range. It returns an error when any record fails verification.
func RunVerifyShredRecords(
	ctx context.Context,
	auditUseCase auditUseCase.AuditUseCase,
	logger *slog.Logger,
	writer io.Writer,
	startDate, endDate string,
	format string,
) error {
	start, err := parseDate(startDate)
	if err != nil {
		return fmt.Errorf("invalid start date: %w", err)
	}

	end, err := parseDate(endDate)
	if err != nil {
		return fmt.Errorf("invalid end date: %w", err)
	}

	if !end.After(start) {
		return fmt.Errorf("end date must be after start date")
	}
	if auditUseCase == nil {
		return ErrAuditDisabled
	}

	logger.Info("verifying shred records",
		slog.Time("start_date", start),
		slog.Time("end_date", end),
	)

	report, err := auditUseCase.VerifyBatch(ctx, start, end)
	if err != nil {
		return fmt.Errorf("failed to verify shred records: %w", err)
	}

	if format == "json" {
		if err := outputVerifyJSON(writer, report); err != nil {
			return fmt.Errorf("failed to output JSON: %w", err)
		}
	} else {
		outputVerifyText(writer, report, start, end)
	}

	logger.Info("verification completed",
		slog.Int64("total_checked", report.TotalChecked),
		slog.Int64("valid", report.ValidCount),
		slog.Int64("invalid", report.InvalidCount),
		slog.Int64("unsigned", report.UnsignedCount),
	)

	if report.InvalidCount > 0 {
		return fmt.Errorf("integrity check failed: %d invalid signature(s)", report.InvalidCount)
	}

	return nil
}

// parseDate accepts "YYYY-MM-DD" or "YYYY-MM-DD HH:MM:SS", interpreted as UTC.
func parseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(time.DateTime, dateStr)
	if err == nil {
		return t, nil
	}

	t, err = time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf(
			"invalid date format (expected YYYY-MM-DD or YYYY-MM-DD HH:MM:SS): %s",
			dateStr,
		)
	}

	return t, nil
}

func outputVerifyText(writer io.Writer, report *auditDomain.VerificationReport, start, end time.Time) {
	_, _ = fmt.Fprintf(writer, "Shred Record Integrity Verification\n")
	_, _ = fmt.Fprintf(writer, "===================================\n\n")
	_, _ = fmt.Fprintf(writer,
		"Time Range: %s to %s\n\n",
		start.Format(time.DateTime),
		end.Format(time.DateTime),
	)

	_, _ = fmt.Fprintf(writer, "Total Checked:  %d\n", report.TotalChecked)
	_, _ = fmt.Fprintf(writer, "Signed:         %d\n", report.SignedCount)
	_, _ = fmt.Fprintf(writer, "Unsigned:       %d\n", report.UnsignedCount)
	_, _ = fmt.Fprintf(writer, "Valid:          %d\n", report.ValidCount)
	_, _ = fmt.Fprintf(writer, "Invalid:        %d\n\n", report.InvalidCount)

	switch {
	case report.InvalidCount > 0:
		_, _ = fmt.Fprintf(writer, "WARNING: %d record(s) failed integrity check!\n\n", report.InvalidCount)
		_, _ = fmt.Fprintf(writer, "Invalid Record IDs:\n")
		for _, id := range report.InvalidRecords {
			_, _ = fmt.Fprintf(writer, "  - %s\n", id)
		}
		_, _ = fmt.Fprintf(writer, "\nStatus: FAILED\n")
	case report.TotalChecked == 0:
		_, _ = fmt.Fprintf(writer, "Status: No records found in specified time range\n")
	default:
		_, _ = fmt.Fprintf(writer, "Status: PASSED\n")
	}
}

func outputVerifyJSON(writer io.Writer, report *auditDomain.VerificationReport) error {
	result := map[string]interface{}{
		"total_checked":   report.TotalChecked,
		"signed_count":    report.SignedCount,
		"unsigned_count":  report.UnsignedCount,
		"valid_count":     report.ValidCount,
		"invalid_count":   report.InvalidCount,
		"invalid_records": report.InvalidRecords,
		"passed":          report.InvalidCount == 0,
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	_, _ = fmt.Fprintln(writer, string(jsonBytes))
	return nil
}

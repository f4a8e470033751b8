package equipmail

import (
	"context"

	"go.uber.org/zap"

	"github.com/ukaji3/equipmail-go/pkg/equipmail/classify"
	"github.com/ukaji3/equipmail-go/pkg/equipmail/config"
	"github.com/ukaji3/equipmail-go/pkg/equipmail/mail"
	"github.com/ukaji3/equipmail-go/pkg/equipmail/models"
	"github.com/ukaji3/equipmail-go/pkg/equipmail/parser"
	"github.com/ukaji3/equipmail-go/pkg/equipmail/render"
)

// RunLaptopReport emails the laptops due for replacement, oldest last.
// Exactly one message is sent, even when no laptop qualifies.
func RunLaptopReport(ctx context.Context, cfg *config.Config, sender mail.Sender, opts Options) (*Result, error) {
	log := opts.logger().With(zap.String("job", JobLaptops))
	lc := cfg.Laptops

	sheet, err := readSheet(cfg.Workbook, lc.Sheet, lc.Columns.Width, lc.Columns.Indexes())
	if err != nil {
		return nil, NewJobError(JobLaptops, "read", err)
	}
	rows, rowErrs := parser.ParseLaptopRows(sheet, lc.Columns)
	logSkipped(log, rowErrs)
	log.Debug("laptop rows read", zap.String("sheet", sheet.Name), zap.Int("rows", len(rows)))

	selected := classify.SelectLaptops(rows, lc.Rule())
	log.Info("laptops selected", zap.Int("selected", len(selected)), zap.Float64("max_age", lc.MaxAge))

	body, err := render.LaptopBody(selected, lc.MaxAge)
	if err != nil {
		return nil, NewJobError(JobLaptops, "render", err)
	}
	msg := models.Message{
		To:       cfg.Recipient,
		Subject:  render.LaptopSubject(opts.now()),
		HTMLBody: body,
	}

	if err := sender.Send(ctx, msg); err != nil {
		return nil, NewJobError(JobLaptops, "send", err)
	}

	return &Result{
		Job:     JobLaptops,
		Sent:    true,
		Message: msg,
		Counts:  map[string]int{"Selected": len(selected)},
		Skipped: rowErrs,
	}, nil
}

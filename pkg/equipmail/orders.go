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

// RunOrderReport emails the order digest. Nothing is sent when no order
// lands in any bucket; the result then has Sent=false.
func RunOrderReport(ctx context.Context, cfg *config.Config, sender mail.Sender, opts Options) (*Result, error) {
	log := opts.logger().With(zap.String("job", JobOrders))
	oc := cfg.Orders

	sheet, err := readSheet(cfg.Workbook, oc.Sheet, oc.Columns.Width, oc.Columns.Indexes())
	if err != nil {
		return nil, NewJobError(JobOrders, "read", err)
	}
	rows, rowErrs := parser.ParseOrderRows(sheet, oc.Columns)
	logSkipped(log, rowErrs)
	log.Debug("order rows read", zap.String("sheet", sheet.Name), zap.Int("rows", len(rows)))

	digest := classify.ClassifyOrders(rows, oc.Rule())
	counts := digest.Counts()
	log.Info("orders classified", zap.Any("buckets", counts))

	result := &Result{
		Job:     JobOrders,
		Counts:  counts,
		Skipped: rowErrs,
	}
	if !digest.HasNewData() {
		log.Info("no orders need attention, not sending")
		return result, nil
	}

	body, err := render.OrderBody(digest)
	if err != nil {
		return nil, NewJobError(JobOrders, "render", err)
	}
	msg := models.Message{
		To:       cfg.Recipient,
		Subject:  render.OrderSubject,
		HTMLBody: body,
	}

	if err := sender.Send(ctx, msg); err != nil {
		return nil, NewJobError(JobOrders, "send", err)
	}

	result.Sent = true
	result.Message = msg
	return result, nil
}

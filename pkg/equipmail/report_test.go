package equipmail

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap/zaptest"

	"github.com/ukaji3/equipmail-go/pkg/equipmail/config"
	"github.com/ukaji3/equipmail-go/pkg/equipmail/mail"
	"github.com/ukaji3/equipmail-go/pkg/equipmail/models"
	"github.com/ukaji3/equipmail-go/pkg/equipmail/parser"
	"github.com/ukaji3/equipmail-go/pkg/equipmail/render"
)

var (
	laptopHeader = []interface{}{"Name", "Department", "Model", "Serial", "Purchased", "Warranty", "Notes", "Age"}
	orderHeader  = []interface{}{"Entry Date", "Undelivered Days", "Order Date", "Delivery Date", "For Whom",
		"Amount", "Currency", "Description", "Link", "Supplier", "Status"}
)

func laptop(name, model string, age interface{}) []interface{} {
	return []interface{}{name, "R&D", model, nil, nil, nil, nil, age}
}

func order(entry string, days interface{}, delivery, forWhom string, amount interface{}, desc, supplier, status string) []interface{} {
	return []interface{}{entry, days, "10/1/26", delivery, forWhom, amount, "USD", desc, nil, supplier, status}
}

// writeWorkbook saves a workbook with the order log as the first sheet and
// the laptop list as a named sheet, and returns a config pointing at it.
func writeWorkbook(t *testing.T, orders, laptops [][]interface{}) *config.Config {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName("Sheet1", "Orders"))
	_, err := f.NewSheet("Laptop List")
	require.NoError(t, err)

	write := func(sheet string, header []interface{}, rows [][]interface{}) {
		all := append([][]interface{}{header}, rows...)
		for i, row := range all {
			cell, _ := excelize.CoordinatesToCellName(1, i+1)
			values := row
			require.NoError(t, f.SetSheetRow(sheet, cell, &values))
		}
	}
	write("Orders", orderHeader, orders)
	write("Laptop List", laptopHeader, laptops)

	path := filepath.Join(t.TempDir(), "equipment.xlsx")
	require.NoError(t, f.SaveAs(path))

	cfg := config.DefaultConfig()
	cfg.Workbook = path
	cfg.Recipient = "it@example.com"
	return cfg
}

func testOptions(t *testing.T) Options {
	return Options{
		Logger: zaptest.NewLogger(t),
		Now:    func() time.Time { return time.Date(2026, time.October, 19, 8, 0, 0, 0, time.UTC) },
	}
}

type failingSender struct{ err error }

func (s failingSender) Send(context.Context, models.Message) error { return s.err }

func TestRunLaptopReport(t *testing.T) {
	cfg := writeWorkbook(t, nil, [][]interface{}{
		laptop("Alice", "X1 Carbon", 3.25),
		laptop("Bob", "T14", 1.2),
		laptop("spare laptop 3", "T480", 4.5),
		laptop("Carol", "MacBook Pro", 2.9),
		laptop("Dan", "XPS 13", "unknown"),
	})
	sender := &mail.Recorder{}

	result, err := RunLaptopReport(context.Background(), cfg, sender, testOptions(t))
	require.NoError(t, err)

	require.Len(t, sender.Messages, 1)
	msg := sender.Messages[0]
	assert.True(t, result.Sent)
	assert.Equal(t, msg, result.Message)
	assert.Equal(t, "it@example.com", msg.To)
	assert.Equal(t, "Monthly laptop replacement script mail | month number 10", msg.Subject)

	assert.Contains(t, msg.HTMLBody, "<tr><td>Carol</td><td>2y 9m</td><td>MacBook Pro</td><td>5</td></tr>")
	assert.Contains(t, msg.HTMLBody, "<tr><td>Alice</td><td>3y 2m</td><td>X1 Carbon</td><td>2</td></tr>")
	assert.Less(t, strings.Index(msg.HTMLBody, "Carol"), strings.Index(msg.HTMLBody, "Alice"))
	assert.NotContains(t, msg.HTMLBody, "Bob")
	assert.NotContains(t, msg.HTMLBody, "spare laptop")

	assert.Equal(t, 2, result.Counts["Selected"])
	require.Len(t, result.Skipped, 1)
	var rowErr *parser.RowError
	require.True(t, errors.As(result.Skipped[0], &rowErr))
	assert.Equal(t, 6, rowErr.Row)
}

func TestRunLaptopReportSendsWhenEmpty(t *testing.T) {
	cfg := writeWorkbook(t, nil, [][]interface{}{laptop("Bob", "T14", 1.2)})
	sender := &mail.Recorder{}

	result, err := RunLaptopReport(context.Background(), cfg, sender, testOptions(t))
	require.NoError(t, err)

	require.Len(t, sender.Messages, 1)
	assert.True(t, result.Sent)
	assert.Contains(t, sender.Messages[0].HTMLBody, render.EmptyPlaceholder)
}

func TestRunOrderReport(t *testing.T) {
	cfg := writeWorkbook(t, [][]interface{}{
		order("10/2/26", 9, "", "Dana", 120, "Dock", "Acme", "Ordered"),
		order("10/3/26", 6, "", "Eli", 40, "Mouse", "Acme", "Ordered"),
		order("10/4/26", 0, "10/6/26", "Fay", 900, "Laptop", "Dell", "Delivered"),
		order("10/5/26", 0, "", "Gus", 15, "Cable", "Acme", "Received"),
		order("10/5/26", 0, "10/7/26", "Hal", 15, "Cable", "Acme", "Received"),
		order("10/6/26", 0, "", "Ivy", 60, "Headset", "Jabra", "Returned"),
		order("10/7/26", 30, "", "Jon", 70, "Bag", "Acme", "Cancelled"),
		order("", 30, "", "Kim", 80, "Phantom", "Acme", "Delivered"),
	}, nil)
	sender := &mail.Recorder{}

	result, err := RunOrderReport(context.Background(), cfg, sender, testOptions(t))
	require.NoError(t, err)

	require.Len(t, sender.Messages, 1)
	msg := sender.Messages[0]
	assert.True(t, result.Sent)
	assert.Equal(t, "Daily order reminder email", msg.Subject)
	assert.Equal(t, map[string]int{
		"Undelivered":          1,
		"DeliveredNotReceived": 1,
		"AwaitingStatusChange": 1,
		"NoDeliveryDate":       1,
	}, result.Counts)

	assert.NotContains(t, msg.HTMLBody, render.EmptyPlaceholder)
	assert.Contains(t, msg.HTMLBody, "<tr><td>2</td><td>9</td><td>Dana</td><td>120</td><td>Dock</td><td>Acme</td></tr>")
	assert.Contains(t, msg.HTMLBody, "<tr><td>4</td><td>10/6/26</td><td>Fay</td><td>900</td><td>Laptop</td></tr>")
	assert.Contains(t, msg.HTMLBody, "<tr><td>5</td><td>Gus</td><td>15</td><td>Cable</td></tr>")
	assert.Contains(t, msg.HTMLBody, "<tr><td>7</td><td>Ivy</td><td>60</td><td>Headset</td><td>Jabra</td><td>Returned</td></tr>")
	for _, excluded := range []string{"Eli", "Hal", "Jon", "Kim"} {
		assert.NotContains(t, msg.HTMLBody, excluded)
	}
}

func TestRunOrderReportSingleDelivered(t *testing.T) {
	cfg := writeWorkbook(t, [][]interface{}{
		order("10/4/26", 0, "10/6/26", "Fay", 900, "Laptop", "Dell", "Delivered"),
	}, nil)
	sender := &mail.Recorder{}

	_, err := RunOrderReport(context.Background(), cfg, sender, testOptions(t))
	require.NoError(t, err)

	require.Len(t, sender.Messages, 1)
	body := sender.Messages[0].HTMLBody
	assert.Equal(t, 3, strings.Count(body, render.EmptyPlaceholder))
	assert.Contains(t, body, "<td>Fay</td>")
}

func TestRunOrderReportNothingToSend(t *testing.T) {
	cfg := writeWorkbook(t, [][]interface{}{
		order("10/3/26", 6, "", "Eli", 40, "Mouse", "Acme", "Ordered"),
		order("10/7/26", 30, "", "Jon", 70, "Bag", "Acme", "Cancelled"),
		order("", 30, "", "Kim", 80, "Phantom", "Acme", "Delivered"),
	}, nil)
	sender := &mail.Recorder{}

	result, err := RunOrderReport(context.Background(), cfg, sender, testOptions(t))
	require.NoError(t, err)

	assert.Empty(t, sender.Messages)
	assert.False(t, result.Sent)
	assert.Equal(t, models.Message{}, result.Message)
}

func TestRunOrderReportSkipsMalformedRows(t *testing.T) {
	cfg := writeWorkbook(t, [][]interface{}{
		order("10/2/26", "n/a", "", "Dana", 120, "Dock", "Acme", "Ordered"),
		order("10/4/26", 0, "10/6/26", "Fay", 900, "Laptop", "Dell", "Delivered"),
	}, nil)
	sender := &mail.Recorder{}

	result, err := RunOrderReport(context.Background(), cfg, sender, testOptions(t))
	require.NoError(t, err)

	assert.True(t, result.Sent)
	require.Len(t, result.Skipped, 1)
	assert.ErrorIs(t, result.Skipped[0], parser.ErrInvalidNumber)
	assert.NotContains(t, sender.Messages[0].HTMLBody, "Dana")
}

func TestRunReportErrors(t *testing.T) {
	t.Run("missing workbook", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Workbook = filepath.Join(t.TempDir(), "missing.xlsx")

		_, err := RunLaptopReport(context.Background(), cfg, &mail.Recorder{}, testOptions(t))
		assert.ErrorIs(t, err, ErrWorkbookNotFound)
		var jobErr *JobError
		require.True(t, errors.As(err, &jobErr))
		assert.Equal(t, "read", jobErr.Stage)
	})

	t.Run("missing sheet", func(t *testing.T) {
		cfg := writeWorkbook(t, nil, nil)
		cfg.Laptops.Sheet = "Laptops 2025"

		_, err := RunLaptopReport(context.Background(), cfg, &mail.Recorder{}, testOptions(t))
		assert.ErrorIs(t, err, parser.ErrSheetNotFound)
	})

	t.Run("send failure", func(t *testing.T) {
		boom := errors.New("smtp down")
		cfg := writeWorkbook(t, [][]interface{}{
			order("10/4/26", 0, "10/6/26", "Fay", 900, "Laptop", "Dell", "Delivered"),
		}, nil)

		_, err := RunOrderReport(context.Background(), cfg, failingSender{err: boom}, testOptions(t))
		assert.ErrorIs(t, err, boom)
		var jobErr *JobError
		require.True(t, errors.As(err, &jobErr))
		assert.Equal(t, JobOrders, jobErr.Job)
		assert.Equal(t, "send", jobErr.Stage)
	})
}

func TestOptionsDefaults(t *testing.T) {
	var opts Options
	assert.NotNil(t, opts.logger())
	assert.WithinDuration(t, time.Now(), opts.now(), time.Minute)

	def := DefaultOptions()
	assert.NotNil(t, def.Logger)
	assert.NotNil(t, def.Now)
}

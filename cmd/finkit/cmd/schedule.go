package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/msto63/finkit/pkg/financial"
)

// scheduleDocument is the --json rendering of a schedule. Amounts are
// strings with --places fractional digits.
type scheduleDocument struct {
	Representation string             `json:"representation"`
	Rate           string             `json:"rate"`
	NPer           string             `json:"nper"`
	PV             string             `json:"pv"`
	FV             string             `json:"fv"`
	Due            string             `json:"due"`
	Installments   []installmentEntry `json:"installments"`
}

type installmentEntry struct {
	Period    int    `json:"period"`
	Payment   string `json:"payment"`
	Interest  string `json:"interest"`
	Principal string `json:"principal"`
	Balance   string `json:"balance"`
}

// scheduleColumns are the table headers, in installmentEntry order
var scheduleColumns = []string{"PERIOD", "PAYMENT", "INTEREST", "PRINCIPAL", "BALANCE"}

func newScheduleCommand(opts *RootOptions) *cobra.Command {
	in := &annuityInputs{}
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "schedule",
		Short:   "Amortization schedule of a level-payment loan",
		Example: "  finkit schedule --rate 0.1 --nper 2 --pv -1000 --json",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("json") {
				asJSON = opts.JSON
			}
			return opts.timed(cmd, func() error {
				var (
					doc *scheduleDocument
					err error
				)
				if opts.Decimal {
					doc, err = buildSchedule(newEngine(cmd, financial.NewDecimal(opts.calculatorOptions()...)), in, opts.Places)
				} else {
					doc, err = buildSchedule(newEngine(cmd, financial.NewFloat(opts.calculatorOptions()...)), in, opts.Places)
				}
				if err != nil {
					return err
				}
				if asJSON {
					enc := json.NewEncoder(cmd.OutOrStdout())
					enc.SetIndent("", "  ")
					return enc.Encode(doc)
				}
				_, err = fmt.Fprint(cmd.OutOrStdout(), renderSchedule(doc))
				return err
			})
		},
	}
	in.bind(cmd, "rate", "nper", "pv", "fv", "due")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the schedule as JSON (default from output.json)")
	return cmd
}

func buildSchedule[T any](e *engine[T], in *annuityInputs, places int32) (*scheduleDocument, error) {
	rate, nper, pv, fv, due := e.value("rate", in.rate), e.value("nper", in.nper), e.value("pv", in.pv), e.value("fv", in.fv), e.due(in.due)
	if e.err != nil {
		return nil, e.err
	}

	rows, err := e.calc.Schedule(rate, nper, pv, fv, due)
	if err != nil {
		return nil, err
	}

	doc := &scheduleDocument{
		Representation: e.num.Name(),
		Rate:           in.rate,
		NPer:           in.nper,
		PV:             in.pv,
		FV:             in.fv,
		Due:            due.String(),
		Installments:   make([]installmentEntry, len(rows)),
	}
	for i, r := range rows {
		doc.Installments[i] = installmentEntry{
			Period:    r.Period,
			Payment:   e.num.Format(r.Payment, places),
			Interest:  e.num.Format(r.Interest, places),
			Principal: e.num.Format(r.Principal, places),
			Balance:   e.num.Format(r.Balance, places),
		}
	}
	return doc, nil
}

// renderSchedule draws the schedule as a right-aligned table
func renderSchedule(doc *scheduleDocument) string {
	cells := make([][]string, len(doc.Installments))
	widths := make([]int, len(scheduleColumns))
	for i, h := range scheduleColumns {
		widths[i] = len(h)
	}
	for i, r := range doc.Installments {
		cells[i] = []string{strconv.Itoa(r.Period), r.Payment, r.Interest, r.Principal, r.Balance}
		for j, c := range cells[i] {
			widths[j] = max(widths[j], len(c))
		}
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Amortization schedule (%s, payments at %s of period)",
		doc.Representation, doc.Due)))
	b.WriteString("\n")

	headers := make([]string, len(scheduleColumns))
	total := 0
	for i, h := range scheduleColumns {
		headers[i] = headerStyle.Width(widths[i] + 2).Render(h)
		total += widths[i] + 2
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, headers...))
	b.WriteString("\n")
	b.WriteString(ruleStyle.Render(strings.Repeat("─", total)))
	b.WriteString("\n")

	for _, row := range cells {
		rendered := make([]string, len(row))
		for j, c := range row {
			rendered[j] = cellStyle.Width(widths[j] + 2).Render(c)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
		b.WriteString("\n")
	}
	return b.String()
}

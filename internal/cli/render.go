package cli

import (
	"fmt"
	"github.com/gostonefire/salesdirectory"
	"gopkg.in/yaml.v3"
	"io"
	"iter"
	"slices"
	"text/tabwriter"
)

// Output formats of the list command
const (
	outputTable = "table"
	outputYAML  = "yaml"
)

// printRecord prints a single record as a framed block
func printRecord(w io.Writer, r salesdirectory.Record) {
	fmt.Fprintln(w, "+-----------------------------------------------------------+")
	fmt.Fprintf(w, "| Order Date/Time: %s %s\n", r.OrderDate, r.OrderTime)
	fmt.Fprintf(w, "| Customer ID: %d | Gender: %s\n", r.CustomerID, r.Gender)
	fmt.Fprintf(w, "| Device: %s | Login Type: %s\n", r.DeviceType, r.LoginType)
	fmt.Fprintf(w, "| Product: %s (%s)\n", r.Product, r.ProductCategory)
	fmt.Fprintf(w, "| Sales: $%.2f | Qty: %d | Discount: %.2f\n", r.Sales, r.Quantity, r.Discount)
	fmt.Fprintf(w, "| Profit: $%.2f | Shipping: $%.2f | Aging: %.1f\n", r.Profit, r.ShippingCost, r.Aging)
	fmt.Fprintf(w, "| Priority: %s | Payment: %s\n", r.OrderPriority, r.PaymentMethod)
	fmt.Fprintln(w, "+-----------------------------------------------------------+")
}

// printAllRecords prints every record as a framed block followed by the total
func printAllRecords(w io.Writer, directory *salesdirectory.Directory) {
	if directory.Count() == 0 {
		fmt.Fprintln(w, "No records found.")
		return
	}

	for record := range directory.Records() {
		printRecord(w, record)
	}
	fmt.Fprintf(w, "Total records: %d\n", directory.Count())
}

// printRecordTable prints records in a human-readable table format
func printRecordTable(w io.Writer, records iter.Seq[salesdirectory.Record]) (err error) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "CUSTOMER ID\tDATE\tTIME\tPRODUCT\tCATEGORY\tQTY\tSALES\tPROFIT\tPRIORITY\tPAYMENT")
	fmt.Fprintln(tw, "-----------\t----\t----\t-------\t--------\t---\t-----\t------\t--------\t-------")
	for r := range records {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%d\t%.2f\t%.2f\t%s\t%s\n",
			r.CustomerID, r.OrderDate, r.OrderTime, r.Product, r.ProductCategory,
			r.Quantity, r.Sales, r.Profit, r.OrderPriority, r.PaymentMethod)
	}

	return tw.Flush()
}

// printRecordYAML prints records as a YAML sequence
func printRecordYAML(w io.Writer, records iter.Seq[salesdirectory.Record]) (err error) {
	all := slices.Collect(records)
	if all == nil {
		all = []salesdirectory.Record{}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err = enc.Encode(all); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	return enc.Close()
}

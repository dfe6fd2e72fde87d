package cli

import (
	"bufio"
	"errors"
	"fmt"
	"github.com/gostonefire/salesdirectory"
	"github.com/gostonefire/salesdirectory/internal/validate"
	"go.uber.org/zap"
	"io"
	"strings"
)

const menuText = `
+-------------------------------------+
|    SALES RECORD MANAGEMENT SYSTEM   |
+-------------------------------------+
| 1. Add New Record                   |
| 2. Search Record                    |
| 3. Delete Record                    |
| 4. Modify Record                    |
| 5. Display All Records              |
| 6. Save and Exit                    |
+-------------------------------------+`

// session is one run of the interactive menu over a directory
type session struct {
	directory *salesdirectory.Directory
	in        *bufio.Reader
	out       io.Writer
	dataFile  string
	logger    *zap.Logger
}

func newSession(directory *salesdirectory.Directory, in io.Reader, out io.Writer, dataFile string, logger *zap.Logger) *session {
	return &session{
		directory: directory,
		in:        bufio.NewReader(in),
		out:       out,
		dataFile:  dataFile,
		logger:    logger,
	}
}

// run shows the menu until the user saves and exits. End of input leaves without saving.
func (s *session) run() (err error) {
	for {
		fmt.Fprintln(s.out, menuText)

		var choice string
		choice, err = s.readLine("\nEnter your choice: ")
		if err != nil {
			return s.endOfInput(err)
		}

		switch choice {
		case "1":
			err = s.add()
		case "2":
			err = s.search()
		case "3":
			err = s.delete()
		case "4":
			err = s.modify()
		case "5":
			fmt.Fprintln(s.out, "\n--- All Records ---")
			printAllRecords(s.out, s.directory)
		case "6":
			return s.save()
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please enter a number between 1 and 6.")
		}

		if err != nil {
			return s.endOfInput(err)
		}
	}
}

func (s *session) add() (err error) {
	fmt.Fprintln(s.out, "\n--- Add New Sales Record ---")

	if s.directory.Count() >= s.directory.MaxRecords() {
		fmt.Fprintln(s.out, "\nFailed to add record (directory full).")
		return
	}

	update, err := s.askRecord(nil)
	if err != nil {
		return
	}

	err = s.directory.Insert(update.Apply(salesdirectory.Record{}))
	if err != nil {
		fmt.Fprintf(s.out, "\nFailed to add record: %v\n", err)
		err = nil
		return
	}
	fmt.Fprintln(s.out, "\nRecord added successfully!")

	return
}

func (s *session) search() (err error) {
	fmt.Fprintln(s.out, "\n--- Search Record ---")

	id, err := s.askID("Enter Customer ID to search: ")
	if err != nil {
		return
	}

	record, err := s.directory.Search(id)
	if err != nil {
		err = s.report(err)
		return
	}
	fmt.Fprintln(s.out, "\nRecord found:")
	printRecord(s.out, record)

	return
}

func (s *session) delete() (err error) {
	fmt.Fprintln(s.out, "\n--- Delete Record ---")

	id, err := s.askID("Enter Customer ID to delete: ")
	if err != nil {
		return
	}

	_, err = s.directory.Delete(id)
	if err != nil {
		err = s.report(err)
		return
	}
	fmt.Fprintln(s.out, "\nRecord deleted successfully.")

	return
}

func (s *session) modify() (err error) {
	fmt.Fprintln(s.out, "\n--- Modify Record ---")

	id, err := s.askID("Enter Customer ID to modify: ")
	if err != nil {
		return
	}

	current, err := s.directory.Search(id)
	if err != nil {
		err = s.report(err)
		return
	}

	fmt.Fprintln(s.out, "\nCurrent record:")
	printRecord(s.out, current)
	fmt.Fprintln(s.out, "\nEnter new values (press Enter to keep current):")

	update, err := s.askRecord(&current)
	if err != nil {
		return
	}

	_, err = s.directory.Modify(id, update)
	if err != nil {
		err = s.report(err)
		return
	}
	fmt.Fprintln(s.out, "\nRecord modified successfully.")

	return
}

func (s *session) save() (err error) {
	err = s.directory.SaveToFile(s.dataFile)
	if err != nil {
		fmt.Fprintln(s.out, "\nFailed to save data.")
		return
	}
	fmt.Fprintln(s.out, "\nData saved successfully. Exiting...")

	return
}

// report prints the outcome of a failed directory operation, only unexpected errors are returned
func (s *session) report(err error) error {
	switch {
	case errors.Is(err, salesdirectory.NoRecordFound{}):
		fmt.Fprintln(s.out, "\nRecord not found.")
	case errors.Is(err, salesdirectory.DuplicateID{}):
		fmt.Fprintln(s.out, "\nID already exists.")
	case errors.Is(err, salesdirectory.MalformedID{}):
		fmt.Fprintln(s.out, "\nInvalid ID format.")
	default:
		return err
	}

	return nil
}

// endOfInput turns end of input into a normal exit without saving
func (s *session) endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(s.out, "\nEnd of input, exiting without saving.")
		s.logger.Warn("menu input ended without save", zap.Int64("records", s.directory.Count()))
		return nil
	}

	return err
}

// readLine prints prompt and returns the next input line with surrounding blanks removed.
// io.EOF is only returned when there is no more input at all.
func (s *session) readLine(prompt string) (line string, err error) {
	fmt.Fprint(s.out, prompt)

	line, err = s.in.ReadString('\n')
	if errors.Is(err, io.EOF) && line != "" {
		err = nil
	}
	line = strings.TrimSpace(line)

	return
}

// askID asks for a customer id of an existing record
func (s *session) askID(prompt string) (id int32, err error) {
	v, err := ask(s, prompt, false, func(in string) (int32, error) {
		return validate.IntInRange(in, validate.MinCustomerID, validate.MaxCustomerID)
	})
	if err != nil {
		return
	}

	id = *v
	return
}

// askRecord asks for every record field. With current set an empty answer keeps the current value
// and the customer id is validated as a change of that record.
func (s *session) askRecord(current *salesdirectory.Record) (update salesdirectory.RecordUpdate, err error) {
	keep := current != nil
	label := func(name string, value any) string {
		if keep {
			return fmt.Sprintf("%s [%v]: ", name, value)
		}
		return name + ": "
	}
	var cur salesdirectory.Record
	if keep {
		cur = *current
	}

	if update.OrderDate, err = ask(s, label("Order Date (YYYY-MM-DD)", cur.OrderDate), keep, parseDate); err != nil {
		return
	}
	if update.OrderTime, err = ask(s, label("Order Time (HH:MM:SS)", cur.OrderTime), keep, parseTime); err != nil {
		return
	}
	if update.Aging, err = ask(s, label("Aging (days)", cur.Aging), keep, floatIn(validate.MinAging, validate.MaxAging)); err != nil {
		return
	}
	if update.CustomerID, err = ask(s, label("Customer ID", cur.CustomerID), keep, s.parseNewID(current)); err != nil {
		return
	}
	if update.Gender, err = ask(s, label("Gender", cur.Gender), keep, parseText); err != nil {
		return
	}
	if update.DeviceType, err = ask(s, label("Device Type", cur.DeviceType), keep, parseText); err != nil {
		return
	}
	if update.LoginType, err = ask(s, label("Customer Login Type", cur.LoginType), keep, parseText); err != nil {
		return
	}
	if update.ProductCategory, err = ask(s, label("Product Category", cur.ProductCategory), keep, parseText); err != nil {
		return
	}
	if update.Product, err = ask(s, label("Product", cur.Product), keep, parseText); err != nil {
		return
	}
	if update.Sales, err = ask(s, label("Sales", cur.Sales), keep, floatIn(validate.MinSales, validate.MaxSales)); err != nil {
		return
	}
	if update.Quantity, err = ask(s, label("Quantity", cur.Quantity), keep, intIn(validate.MinQuantity, validate.MaxQuantity)); err != nil {
		return
	}
	if update.Discount, err = ask(s, label("Discount (0-1)", cur.Discount), keep, floatIn(validate.MinDiscount, validate.MaxDiscount)); err != nil {
		return
	}
	if update.Profit, err = ask(s, label("Profit", cur.Profit), keep, floatIn(validate.MinProfit, validate.MaxProfit)); err != nil {
		return
	}
	if update.ShippingCost, err = ask(s, label("Shipping Cost", cur.ShippingCost), keep, floatIn(validate.MinShippingCost, validate.MaxShippingCost)); err != nil {
		return
	}
	if update.OrderPriority, err = ask(s, label("Order Priority", cur.OrderPriority), keep, parseText); err != nil {
		return
	}
	if update.PaymentMethod, err = ask(s, label("Payment Method", cur.PaymentMethod), keep, parseText); err != nil {
		return
	}

	return
}

// parseNewID returns a parser accepting a customer id free for a new record, or for current if set
func (s *session) parseNewID(current *salesdirectory.Record) func(string) (int32, error) {
	return func(in string) (id int32, err error) {
		id, err = validate.IntInRange(in, validate.MinCustomerID, validate.MaxCustomerID)
		if err != nil {
			return
		}

		if current == nil {
			err = s.directory.ValidateID(id)
		} else {
			err = s.directory.ValidateIDExcluding(id, current.CustomerID)
		}
		if errors.Is(err, salesdirectory.DuplicateID{}) {
			err = fmt.Errorf("ID already exists")
		}

		return
	}
}

// ask prompts until parse accepts the answer. With keep set an empty answer returns nil.
func ask[T any](s *session, prompt string, keep bool, parse func(string) (T, error)) (value *T, err error) {
	for {
		var line string
		line, err = s.readLine(prompt)
		if err != nil {
			return
		}
		if line == "" && keep {
			return
		}

		v, perr := parse(line)
		if perr != nil {
			fmt.Fprintf(s.out, "Invalid input: %v\n", perr)
			continue
		}

		value = &v
		return
	}
}

func parseDate(in string) (string, error) {
	return in, validate.Date(in)
}

func parseTime(in string) (string, error) {
	return in, validate.Time(in)
}

func parseText(in string) (string, error) {
	if in == "" {
		return in, fmt.Errorf("value must not be empty")
	}
	return in, validate.Text(in, validate.MaxTextLength)
}

func floatIn(min, max float32) func(string) (float32, error) {
	return func(in string) (float32, error) {
		return validate.FloatInRange(in, min, max)
	}
}

func intIn(min, max int32) func(string) (int32, error) {
	return func(in string) (int32, error) {
		return validate.IntInRange(in, min, max)
	}
}

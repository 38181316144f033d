package http

import (
	"banalysis/internal/statement"
)

// transactionView is the template-friendly shape of one table row.
type transactionView struct {
	Date        string
	Type        string
	Description string
	Amount      string
	Balance     string
	Colour      string
}

// tableView backs the transactions table partial.
type tableView struct {
	Loaded   bool
	Filename string
	Rows     []transactionView
}

// summaryView backs the stat strip partial.
type summaryView struct {
	Loaded       bool
	Filename     string
	Transactions int
	DateSpan     string
	EndBalance   string
	UploadedAt   string
}

func newTableView(st statement.Statement, loaded bool) tableView {
	v := tableView{Loaded: loaded, Filename: st.Filename}
	if !loaded {
		return v
	}

	v.Rows = make([]transactionView, 0, len(st.Transactions))
	for _, tx := range st.Transactions {
		v.Rows = append(v.Rows, transactionView{
			Date:        tx.Date.Display(),
			Type:        tx.Type,
			Description: tx.Description,
			Amount:      formatPounds(tx.Amount),
			Balance:     formatPounds(tx.Balance),
			Colour:      tx.Colour(),
		})
	}
	return v
}

func newSummaryView(st statement.Statement, loaded bool) summaryView {
	if !loaded {
		return summaryView{}
	}

	v := summaryView{
		Loaded:       true,
		Filename:     st.Filename,
		Transactions: st.Summary.Transactions,
		EndBalance:   formatPounds(st.Summary.EndBalance),
		UploadedAt:   st.UploadedAt.Format("15:04:05"),
	}
	if st.Summary.Transactions > 0 {
		v.DateSpan = st.Summary.MinDate.Display() + " to " + st.Summary.MaxDate.Display()
	}
	return v
}

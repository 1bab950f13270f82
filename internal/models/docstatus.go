package models

import "fmt"

// DocumentCounts counts a candidate's requested documents per status.
type DocumentCounts map[DocumentStatus]int

// CountDocuments tallies docs by status.
func CountDocuments(docs []CandidateDocument) DocumentCounts {
	counts := DocumentCounts{}
	for _, d := range docs {
		counts[d.Status]++
	}
	return counts
}

// Total is the number of requested documents.
func (c DocumentCounts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// DocsState is the aggregate documents status shown in the HR candidate list.
type DocsState string

const (
	DocsStateNone     DocsState = "NONE"
	DocsStateRejected DocsState = "REJECTED"
	DocsStatePending  DocsState = "PENDING"
	DocsStateClear    DocsState = "ALL_CLEAR"
)

// DocsStatus is derived on every read and never stored.
type DocsStatus struct {
	State DocsState `json:"state"`
	Count int       `json:"count"`
	Label string    `json:"label"`
}

// Summarize projects counts into the aggregate status. Rejections win over
// pending requests; submitted and approved documents count as clear.
func (c DocumentCounts) Summarize() DocsStatus {
	if c.Total() == 0 {
		return DocsStatus{State: DocsStateNone, Label: "-"}
	}
	if n := c[DocumentStatusRejected]; n > 0 {
		return DocsStatus{State: DocsStateRejected, Count: n, Label: fmt.Sprintf("%d Rejeitado(s)", n)}
	}
	if n := c[DocumentStatusPending]; n > 0 {
		return DocsStatus{State: DocsStatePending, Count: n, Label: fmt.Sprintf("%d Pendente(s)", n)}
	}
	return DocsStatus{State: DocsStateClear, Label: "✔ Tudo Certo"}
}

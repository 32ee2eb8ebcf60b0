package entities

// Dataset is the full set of collections owned by the entity store.
// Collections are ordered most-recent-first.
type Dataset struct {
	Leads            []Lead            `json:"leads"`
	Quotes           []Quote           `json:"quotes"`
	Orders           []Order           `json:"orders"`
	Projects         []Project         `json:"projects"`
	Tasks            []Task            `json:"tasks"`
	Approvals        []Approval        `json:"approvals"`
	Invoices         []Invoice         `json:"invoices"`
	Inventory        []InventoryItem   `json:"inventory"`
	PortalMilestones []PortalMilestone `json:"portal_milestones"`
}

// Clone returns a deep copy; mutating the copy never affects d.
func (d Dataset) Clone() Dataset {
	out := Dataset{
		Leads:            make([]Lead, len(d.Leads)),
		Quotes:           make([]Quote, len(d.Quotes)),
		Orders:           make([]Order, len(d.Orders)),
		Projects:         make([]Project, len(d.Projects)),
		Tasks:            make([]Task, len(d.Tasks)),
		Approvals:        make([]Approval, len(d.Approvals)),
		Invoices:         make([]Invoice, len(d.Invoices)),
		Inventory:        append([]InventoryItem(nil), d.Inventory...),
		PortalMilestones: make([]PortalMilestone, len(d.PortalMilestones)),
	}
	for i, l := range d.Leads {
		l.ExpectedClose = cloneTime(l.ExpectedClose)
		out.Leads[i] = l
	}
	for i, q := range d.Quotes {
		out.Quotes[i] = cloneQuote(q)
	}
	for i, o := range d.Orders {
		o.PromisedDate = cloneTime(o.PromisedDate)
		out.Orders[i] = o
	}
	for i, p := range d.Projects {
		out.Projects[i] = cloneProject(p)
	}
	for i, t := range d.Tasks {
		t.DueAt = cloneTime(t.DueAt)
		out.Tasks[i] = t
	}
	for i, a := range d.Approvals {
		a.DueAt = cloneTime(a.DueAt)
		out.Approvals[i] = a
	}
	for i, inv := range d.Invoices {
		out.Invoices[i] = cloneInvoice(inv)
	}
	for i, m := range d.PortalMilestones {
		m.CompletedAt = cloneTime(m.CompletedAt)
		out.PortalMilestones[i] = m
	}
	return out
}

func cloneQuote(q Quote) Quote {
	cp := q
	cp.Items = make([]QuoteItem, len(q.Items))
	for i, it := range q.Items {
		it.DiscountPct = cloneFloat(it.DiscountPct)
		it.TaxRate = cloneFloat(it.TaxRate)
		it.DueDate = cloneTime(it.DueDate)
		cp.Items[i] = it
	}
	return cp
}

func cloneProject(p Project) Project {
	cp := p
	cp.StartDate = cloneTime(p.StartDate)
	cp.DueDate = cloneTime(p.DueDate)
	cp.CompletionDate = cloneTime(p.CompletionDate)
	cp.Stages = make([]ProjectStage, len(p.Stages))
	for i, s := range p.Stages {
		s.StartedAt = cloneTime(s.StartedAt)
		s.DueAt = cloneTime(s.DueAt)
		s.CompletedAt = cloneTime(s.CompletedAt)
		cp.Stages[i] = s
	}
	return cp
}

func cloneInvoice(inv Invoice) Invoice {
	cp := inv
	cp.DueDate = cloneTime(inv.DueDate)
	cp.Payments = append([]Payment(nil), inv.Payments...)
	return cp
}

// The lookups below return pointers into d's slices, or nil when absent.

func (d *Dataset) Quote(id string) *Quote {
	for i := range d.Quotes {
		if d.Quotes[i].ID == id {
			return &d.Quotes[i]
		}
	}
	return nil
}

func (d *Dataset) Order(id string) *Order {
	for i := range d.Orders {
		if d.Orders[i].ID == id {
			return &d.Orders[i]
		}
	}
	return nil
}

func (d *Dataset) Project(id string) *Project {
	for i := range d.Projects {
		if d.Projects[i].ID == id {
			return &d.Projects[i]
		}
	}
	return nil
}

func (d *Dataset) Task(id string) *Task {
	for i := range d.Tasks {
		if d.Tasks[i].ID == id {
			return &d.Tasks[i]
		}
	}
	return nil
}

func (d *Dataset) Approval(id string) *Approval {
	for i := range d.Approvals {
		if d.Approvals[i].ID == id {
			return &d.Approvals[i]
		}
	}
	return nil
}

func (d *Dataset) Invoice(id string) *Invoice {
	for i := range d.Invoices {
		if d.Invoices[i].ID == id {
			return &d.Invoices[i]
		}
	}
	return nil
}

// TasksForProject returns copies of the tasks bound to projectID.
func (d Dataset) TasksForProject(projectID string) []Task {
	out := make([]Task, 0)
	for _, t := range d.Tasks {
		if t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	return out
}

package types

// Normalize folds legacy client field names into their canonical
// counterparts. Older front-end versions saved profile documents with
// drifting field names; rather than scattering fallback chains through the
// pipeline, the precedence is applied once here, at the store boundary.
//
// Precedence per field (canonical wins when both are set):
//   - work.startDate        > work.beginningdate
//   - work.endDate          > work.finishdate
//   - work.description      > work.responsibilities
//   - project.tools         > project.stack
//   - project.descriptions  > project.details
//   - education.institution > education.school
//   - education.endDate     > education.year > education.graduationYear
//
// Legacy fields are cleared after folding so re-serialized documents carry
// canonical names only.
func (p *Profile) Normalize() {
	for i := range p.Work {
		w := &p.Work[i]
		if w.StartDate == "" {
			w.StartDate = w.BeginningDate
		}
		if w.EndDate == "" {
			w.EndDate = w.FinishDate
		}
		if len(w.Description) == 0 {
			w.Description = w.Responsibilities
		}
		w.BeginningDate = ""
		w.FinishDate = ""
		w.Responsibilities = nil
	}

	for i := range p.Projects {
		pr := &p.Projects[i]
		if len(pr.Tools) == 0 {
			pr.Tools = pr.Stack
		}
		if len(pr.Descriptions) == 0 {
			pr.Descriptions = pr.Details
		}
		pr.Stack = nil
		pr.Details = nil
	}

	for i := range p.Education {
		ed := &p.Education[i]
		if ed.Institution == "" {
			ed.Institution = ed.School
		}
		if ed.EndDate == "" {
			if ed.Year != "" {
				ed.EndDate = ed.Year
			} else {
				ed.EndDate = ed.GraduationYear
			}
		}
		ed.School = ""
		ed.Year = ""
		ed.GraduationYear = ""
	}
}

// GraduationDisplay returns the display year for an education entry: the
// year component of the end date, or the sentinel unchanged.
func (e *EducationItem) GraduationDisplay() string {
	if e.EndDate == "" || e.EndDate == PresentSentinel {
		return e.EndDate
	}
	// ISO dates are YYYY or YYYY-MM or YYYY-MM-DD; the year is the prefix.
	if len(e.EndDate) >= 4 {
		return e.EndDate[:4]
	}
	return e.EndDate
}

package domain

// UnassignedDoctor is returned when a kind has no directory entry. The
// default directory covers every defined kind, so this is only reachable
// for data written by hand or by a future kind this build does not know.
const UnassignedDoctor = "Dr. No Asignado"

// Directory maps appointment kinds to the doctor covering the specialty.
// It is consulted at appointment-creation time only; the result is
// snapshotted onto the appointment, so later edits never rewrite
// existing bookings.
type Directory map[Kind]string

// DefaultDirectory returns the directory the system boots with.
func DefaultDirectory() Directory {
	return Directory{
		KindGeneralMedicine: "Dra. Nohe García",
		KindBloodTests:      "Dr. Carlos López",
		KindPsychology:      "Dra. Ana Rodríguez",
	}
}

// Doctor returns the doctor assigned to the given kind, or
// UnassignedDoctor when the kind has no entry.
func (d Directory) Doctor(kind Kind) string {
	if name, ok := d[kind]; ok && name != "" {
		return name
	}
	return UnassignedDoctor
}

// Assign sets or replaces the doctor for a specialty.
func (d Directory) Assign(kind Kind, name string) {
	d[kind] = name
}

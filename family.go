package rtsp

// Family is the address family hint of a URL.
type Family int

const (
	FamilyINET Family = iota
	FamilyINET6
)

func (f Family) String() string {
	if f == FamilyINET6 {
		return "inet6"
	}
	return "inet"
}

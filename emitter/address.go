package emitter

import (
	"strings"

	"github.com/zostay/go-addr/pkg/addr"
)

// maxGroupNesting bounds recursion over address groups. Real headers nest a
// group at most one level deep, so this only guards against adversarial
// input.
const maxGroupNesting = 64

// Address is either a Mailbox or a Group. It is a closed sum: the two
// implementations in this package are the only ones.
type Address interface {
	empty() bool
	compose(e *Emitter, depth int) error
}

// Mailbox is a single address with an optional display name.
type Mailbox struct {
	// Name is the display name. It may be empty, in which case only the
	// bare address is emitted.
	Name string

	// Email is the address itself, e.g. "john@example.com". A Mailbox with
	// an empty Email is skipped by AddAddresses.
	Email string
}

func (m Mailbox) empty() bool { return m.Email == "" }

func (m Mailbox) compose(e *Emitter, _ int) error {
	return e.AddAddress(m)
}

// Group is a named collection of addresses, emitted as
// "Name: member, member;". Members may themselves be groups.
type Group struct {
	// Name is the group display name.
	Name string

	// Members holds the addresses of the group, in emission order.
	Members []Address
}

func (g Group) empty() bool { return false }

func (g Group) compose(e *Emitter, depth int) error {
	if err := e.AddPhrase(g.Name, displayNameSpecials, false); err != nil {
		return err
	}
	if err := e.addLiteral(": ", true); err != nil {
		return err
	}
	if err := e.addAddresses(g.Members, depth+1); err != nil {
		return err
	}
	return e.addLiteral(";", true)
}

// AddAddress places a single mailbox. A display name, if present, is emitted
// as a quotable phrase followed by the address in angle brackets; otherwise
// the bare address is emitted. The local-part is quoted when it needs to be.
//
// Addresses are not splittable, so any placement failure here is terminal
// and returns an UnencodableError.
func (e *Emitter) AddAddress(mb Mailbox) error {
	if mb.Name != "" {
		if err := e.AddPhrase(mb.Name, displayNameSpecials, false); err != nil {
			return err
		}
		if err := e.addLiteral(" <", false); err != nil {
			return err
		}
	}

	local, rest := mb.Email, ""
	if at := strings.LastIndexByte(mb.Email, '@'); at >= 0 {
		local, rest = mb.Email[:at], mb.Email[at:]
	}

	if err := e.AddQuotable(local, localPartSpecials, false); err != nil {
		return &UnencodableError{Word: mb.Email}
	}

	if mb.Name != "" {
		rest += ">"
	}
	if rest == "" {
		return nil
	}
	return e.addLiteral(rest, false)
}

// AddAddresses places a list of addresses separated by commas, recursing
// into groups. Mailboxes with an empty Email are skipped entirely, so no
// separator is ever emitted for them.
func (e *Emitter) AddAddresses(list []Address) error {
	return e.addAddresses(list, 0)
}

func (e *Emitter) addAddresses(list []Address, depth int) error {
	if depth > maxGroupNesting {
		return ErrGroupNesting
	}

	first := true
	for _, a := range list {
		if a == nil || a.empty() {
			continue
		}
		if !first {
			if err := e.addLiteral(", ", true); err != nil {
				return err
			}
		}
		first = false

		if err := a.compose(e, depth); err != nil {
			return err
		}
	}

	return nil
}

// FromAddrList converts an address list parsed by github.com/zostay/go-addr
// into the structured form this package emits. Mailboxes keep their display
// name and address; groups keep their name and are converted recursively.
// Address forms go-addr may produce beyond those two are dropped.
func FromAddrList(al addr.AddressList) []Address {
	out := make([]Address, 0, len(al))
	for _, a := range al {
		switch a := a.(type) {
		case *addr.Mailbox:
			out = append(out, Mailbox{Name: a.DisplayName(), Email: a.Address()})
		case *addr.Group:
			out = append(out, Group{
				Name:    a.DisplayName(),
				Members: FromAddrList(a.MailboxList().AddressList()),
			})
		}
	}
	return out
}

package weapon

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/fireteam/prefabs"
)

var (
	ErrUnknownAttachment = errors.New("unknown attachment")
	ErrLocked            = errors.New("attachment is locked")
)

type Category int

const (
	Magazine Category = iota
	Foregrip
	Rail
	Scope
	Muzzle
)

const numCategories = 5

// Categories lists every category in modifier application order.
var Categories = [numCategories]Category{Magazine, Foregrip, Rail, Scope, Muzzle}

func (c Category) String() string {
	switch c {
	case Magazine:
		return "magazine"
	case Foregrip:
		return "foregrip"
	case Rail:
		return "rail"
	case Scope:
		return "scope"
	case Muzzle:
		return "muzzle"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

type Op int

const (
	OpInvalid Op = iota
	OpSet
	OpAdd
)

func (o Op) String() string {
	switch o {
	case OpSet:
		return "set"
	case OpAdd:
		return "add"
	default:
		return "invalid"
	}
}

// parseOp maps an asset mode to an Op. Blank means set.
func parseOp(s string) Op {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "set":
		return OpSet
	case "add":
		return OpAdd
	default:
		return OpInvalid
	}
}

// Modifier changes one weapon stat while its attachment is equipped.
type Modifier struct {
	Stat  string
	Value string
	Op    Op
}

type Attachment struct {
	Name      string
	Unlocked  bool
	Equipped  bool
	Position  mgl64.Vec3
	Rotation  mgl64.Vec3
	AimOffset mgl64.Vec3
	Modifiers []Modifier
}

func attachmentFromSpec(spec prefabs.AttachmentSpec) Attachment {
	a := Attachment{
		Name:      spec.Name,
		Unlocked:  spec.Unlocked,
		Equipped:  spec.Equipped,
		Position:  spec.Position.Vec(),
		Rotation:  spec.Rotation.Vec(),
		AimOffset: spec.AimOffset.Vec(),
	}
	for _, m := range spec.Modifiers {
		a.Modifiers = append(a.Modifiers, Modifier{Stat: m.Stat, Value: m.Value, Op: parseOp(m.Mode)})
	}
	return a
}

// Slot is the attachment list of one category. At most one item is
// equipped, and only unlocked items may be.
type Slot[C fmt.Stringer] struct {
	Category C
	Items    []Attachment

	// equip order stamps, keyed by item index
	stamps map[int]uint64
	clock  uint64
}

func NewSlot[C fmt.Stringer](category C, items ...Attachment) *Slot[C] {
	s := &Slot[C]{Category: category, Items: items}
	s.Enforce()
	return s
}

// Equip equips the named item. The item equipped before it is unequipped
// on the Enforce that follows.
func (s *Slot[C]) Equip(name string) error {
	i := s.index(name)
	if i < 0 {
		return fmt.Errorf("%w: %s %q", ErrUnknownAttachment, s.Category, name)
	}
	if !s.Items[i].Unlocked {
		return fmt.Errorf("%w: %s %q", ErrLocked, s.Category, name)
	}
	s.Items[i].Equipped = true
	s.touch(i)
	s.Enforce()
	return nil
}

func (s *Slot[C]) Unequip(name string) error {
	i := s.index(name)
	if i < 0 {
		return fmt.Errorf("%w: %s %q", ErrUnknownAttachment, s.Category, name)
	}
	s.Items[i].Equipped = false
	return nil
}

// MarkEquipped sets the equipped flag of the item at i without
// validating, the way an editor toggles a checkbox. Enforce settles it.
func (s *Slot[C]) MarkEquipped(i int, on bool) {
	if i < 0 || i >= len(s.Items) {
		return
	}
	s.Items[i].Equipped = on
	if on {
		s.touch(i)
	}
}

func (s *Slot[C]) Unlock(name string) error {
	i := s.index(name)
	if i < 0 {
		return fmt.Errorf("%w: %s %q", ErrUnknownAttachment, s.Category, name)
	}
	s.Items[i].Unlocked = true
	return nil
}

// Enforce settles the slot and returns how many flags it cleared.
func (s *Slot[C]) Enforce() int {
	return enforceExclusive(s.Items, s.stamps)
}

// Equipped returns the equipped item, if any.
func (s *Slot[C]) Equipped() (Attachment, bool) {
	for _, a := range s.Items {
		if a.Equipped && a.Unlocked {
			return a, true
		}
	}
	return Attachment{}, false
}

func (s *Slot[C]) index(name string) int {
	for i, a := range s.Items {
		if a.Name == name {
			return i
		}
	}
	return -1
}

func (s *Slot[C]) touch(i int) {
	if s.stamps == nil {
		s.stamps = make(map[int]uint64)
	}
	s.clock++
	s.stamps[i] = s.clock
}

// enforceExclusive unequips locked items, then keeps one equipped item:
// the one with the newest stamp, or the first in list order when no
// equipped item carries a stamp.
func enforceExclusive(items []Attachment, stamps map[int]uint64) int {
	cleared := 0
	winner := -1
	var best uint64
	for i := range items {
		if !items[i].Equipped {
			continue
		}
		if !items[i].Unlocked {
			items[i].Equipped = false
			cleared++
			continue
		}
		stamp := stamps[i]
		if winner < 0 || stamp > best {
			winner, best = i, stamp
		}
	}
	for i := range items {
		if i != winner && items[i].Equipped {
			items[i].Equipped = false
			cleared++
		}
	}
	return cleared
}

// Loadout holds one slot per category.
type Loadout struct {
	slots [numCategories]*Slot[Category]
}

func NewLoadout(spec prefabs.AttachmentsSpec) *Loadout {
	lists := [numCategories][]prefabs.AttachmentSpec{
		Magazine: spec.Magazine,
		Foregrip: spec.Foregrip,
		Rail:     spec.Rail,
		Scope:    spec.Scope,
		Muzzle:   spec.Muzzle,
	}
	l := &Loadout{}
	for _, c := range Categories {
		items := make([]Attachment, 0, len(lists[c]))
		for _, a := range lists[c] {
			items = append(items, attachmentFromSpec(a))
		}
		l.slots[c] = NewSlot(c, items...)
	}
	return l
}

func (l *Loadout) Slot(c Category) *Slot[Category] {
	if l == nil || c < 0 || c >= numCategories {
		return nil
	}
	return l.slots[c]
}

// Enforce settles every slot.
func (l *Loadout) Enforce() int {
	if l == nil {
		return 0
	}
	n := 0
	for _, s := range l.slots {
		n += s.Enforce()
	}
	return n
}

// Fitted is an equipped attachment with its category.
type Fitted struct {
	Category Category
	Attachment
}

// Fitted settles every slot, then lists the equipped attachments in
// category order.
func (l *Loadout) Fitted() []Fitted {
	if l == nil {
		return nil
	}
	l.Enforce()
	var out []Fitted
	for _, c := range Categories {
		for _, a := range l.slots[c].Items {
			if a.Equipped && a.Unlocked {
				out = append(out, Fitted{Category: c, Attachment: a})
			}
		}
	}
	return out
}

// Instance is a spawned attachment on the weapon.
type Instance struct {
	Category Category
	Name     string
	Position mgl64.Vec3
	Rotation mgl64.Vec3
}

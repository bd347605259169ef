package life

// Location labels, one fixed vocabulary per age band.
const (
	LocHomeWithParents = "Дома (с родителями)"
	LocKindergarten    = "Детский сад"
	LocHome            = "Дома"
	LocSchool          = "Школа"
	LocOutside         = "На улице (с друзьями)"
	LocUniversity      = "Университет/Колледж"
	LocWork            = "Работа/Подработка"
	LocHomePersonal    = "Дома/Личная жизнь"
)

// Location picks the setting for the next event based on age.
// One uniform draw per call; the result is pure given the dice state.
//
// Bands:
//
//	<3      home with parents (always)
//	[3,7)   kindergarten 50% / home 50%
//	[7,18)  school 40% / home 30% / outside 30%
//	>=18    university 40% / work 30% / home and personal life 30%
func (d *Dice) Location(age int) string {
	roll := d.float64()

	switch {
	case age < 3:
		return LocHomeWithParents
	case age < 7:
		if roll < 0.5 {
			return LocKindergarten
		}
		return LocHome
	case age < 18:
		if roll < 0.4 {
			return LocSchool
		}
		if roll < 0.7 {
			return LocHome
		}
		return LocOutside
	default:
		if roll < 0.4 {
			return LocUniversity
		}
		if roll < 0.7 {
			return LocWork
		}
		return LocHomePersonal
	}
}

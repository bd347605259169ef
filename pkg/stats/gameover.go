package stats

// gameOverMessages holds the terminal narrative for each problem stat.
var gameOverMessages = map[Key]string{
	DrugAddiction:      "Ваша зависимость стала фатальной. Вы потеряли всё: здоровье, семью, свободу. Финал вашей истории печален.",
	GamblingAddiction:  "Долги стали неподъемными. Коллекторы забрали последнее, а вы оказались на улице без шанса на возврат.",
	Vandalism:          "Ваши выходки перешли черту. Серьезное уничтожение имущества привело к огромному сроку в колонии.",
	ReligiousExtremism: "Ваши радикальные действия привели к трагедии. Вы арестованы спецслужбами и изолированы от общества навсегда.",
	Bullying:           "Ваша жестокость привела к непоправимому. Жертва пострадала слишком сильно, и теперь вы ответите по всей строгости закона.",
	Violence:           "Вспышка ярости закончилась трагедией. Вы нанесли тяжкие телесные повреждения и отправляетесь в тюрьму на долгие годы.",
	Wastefulness:       "Вы промотали всё до копейки и влезли в криминальные долги. Ваша жизнь разрушена полным банкротством и нищетой.",
}

// genericGameOver is used if a problem key has no dedicated message.
const genericGameOver = "Вы перешли черту. Игра окончена."

// Evaluate checks whether any problem stat has reached MaxValue.
// Problems are checked in declaration order and the first match wins.
// The returned reason is the terminal narrative for that stat.
func Evaluate(s Sheet) (isOver bool, reason string) {
	for _, k := range Problems {
		if s[k] >= MaxValue {
			msg, ok := gameOverMessages[k]
			if !ok {
				msg = genericGameOver
			}
			return true, msg
		}
	}
	return false, ""
}

package life

import "fmt"

// newbornStory opens an age-0 session.
const newbornStory = `Вы родились! Это был долгий путь, но вы наконец здесь.
Мир вокруг огромный, яркий и шумный. Вы лежите в кроватке, вам 0 лет.
Вы чувствуете голод и усталость, но рядом слышите голоса родителей. Они спорят, кто должен встать к вам ночью.

Как вы привлечете их внимание? (Громко заплакать? Попытаться уснуть? Издать тихий звук?)`

// StartStory returns the opening narrative for a new session.
func StartStory(username string, age int, location string) string {
	if age == 0 {
		return newbornStory
	}
	return fmt.Sprintf(`Вы начинаете симуляцию в возрасте %d лет.
Ваше имя %s.
Текущая локация: %s.

Жизнь идет своим чередом. Что происходит вокруг вас и что вы собираетесь делать?`, age, username, location)
}

package handlers

import "math/rand/v2"

// pick returns a uniformly random element of items.
func pick(items []string) string {
	return items[rand.IntN(len(items))]
}

const (
	listenPrompt   = "🐙 Коралл слушает! О чём хочешь поговорить?"
	groupOnlyReply = "🐙 Эта команда работает только в группах!"
	tooFewReply    = "🐙 В группе слишком мало участников для выбора! Нужно минимум 2 участника."
	noAdminsReply  = "🤷 Не удалось получить список админов"
	joinPrompt     = "🐙 Хотите участвовать в активностях группы?"
	joinButtonText = "Нажмите на кнопку, чтобы добавиться в список участников"
	alreadyInList  = "ℹ️ Вы уже зарегистрированы в этой группе!"
	addedToList    = "✅ Вы успешно добавлены в список участников!"
)

var startGreetings = []string{
	"🐙 Привет! Я Коралл — твой групповой помощник!\n\nНапиши 'помощь' чтобы узнать мои команды",
	"🌊 Приветствую! Коралл к вашим услугам!\n\nИспользуй 'команды' для списка возможностей",
	"🚀 Добро пожаловать! Я готов помочь!\n\nНабери 'help' для инструкций",
}

const helpText = `🐙 *Команды Коралла:*

*Общение:*
• коралл [вопрос] — поговорить с ИИ
• пинг — проверить бота

*Групповые команды:*
• шип — выбрать милую парочку
• предсказание — получить предсказание
• миссия — получить тайное задание
• участие — добавиться в список участников
• цитата — мудрая цитата
• факт — интересный факт
• комплимент — случайный комплимент
• мотивация — мотивирующая фраза
• викторина — случайный вопрос
• челлендж — испытание дня

*Развлечения:*
• гороскоп — предсказания по знакам зодиака
• рецепт — кулинарные рецепты
• игра — интерактивные игры
• загадка — загадки для размышлений
• история — интересные исторические факты
• покер — случайная карта
• монетка — подбросить монетку
• кубик — бросить кости

*Инфо:*
• статистика — статистика группы
• админы — список админов`

var pingReplies = []string{
	"🏓 Понг! Коралл на связи!", "🎯 Попал! Я здесь!",
	"⚡ Молниеносно отвечаю!", "🚀 Коралл в деле!", "💫 Как дела? Я тут!",
	"🌊 Плещусь в чате!", "🐙 Щупальца готовы к работе!",
}

var wishes = []string{
	"Желаем вам счастья и любви!",
	"Пусть ваша дружба крепнет с каждым днём!",
	"Любите и поддерживайте друг друга!",
	"Пусть ваши дни будут полны радости и понимания!",
	"Всегда оставайтесь рядом и цените моменты вместе!",
	"Пусть ваша связь будет крепкой как кораллы!",
	"Вместе вы непобедимы!",
	"Пусть каждый день приносит новые приключения!",
	"Ваша дружба — настоящее сокровище!",
	"Пусть смех и радость не покидают вас!",
}

var predictions = []string{
	"🔮 Не бойся менять жизнь!", "✨ Что-то хорошее произойдёт скоро.",
	"🌟 Ты на правильном пути.", "🍀 Удача улыбнётся тебе сегодня.",
	"🎯 Твои мечты ближе, чем кажется.",
	"🌈 После дождичка в четверг будет радуга.",
	"💎 Ты найдёшь то, что давно искал.",
	"🚀 Впереди тебя ждут новые возможности.",
	"🎪 Жизнь готовит тебе приятный сюрприз.",
	"🌸 Твоя доброта вернётся к тебе сторицей.",
}

var missions = []string{
	"🎯 Скажи 'банан' в разговоре незаметно.",
	"🤝 Отправь сообщение дружелюбно кому-то.",
	"💝 Сделай комплимент участнику.", "📚 Поделись интересным фактом.",
	"🎵 Напой песню (текстом).", "🤔 Задай философский вопрос.",
	"🎭 Расскажи смешную историю.", "🌟 Поблагодари кого-то за что-то.",
	"🎨 Опиши свой идеальный день.", "🚀 Поделись своей мечтой.",
}

var quotes = []string{
	"💫 'Будь собой — все остальные роли уже заняты.' — Оскар Уайльд",
	"🌟 'Жизнь — это то, что происходит, пока ты строишь планы.' — Джон Леннон",
	"🎯 'Единственный способ делать отличную работу — любить то, что делаешь.' — Стив Джобс",
	"🌈 'Счастье — это не цель, а побочный продукт жизни.' — Элеонор Рузвельт",
	"🚀 'Будущее принадлежит тем, кто верит в красоту своих мечтаний.' — Элеонор Рузвельт",
	"💎 'Не ждите особого случая — каждый день особенный.' — Неизвестный автор",
	"🌸 'Улыбка — это кривая, которая всё выпрямляет.' — Филлис Диллер",
	"⭐ 'Начинайте там, где вы есть. Используйте то, что у вас есть. Делайте то, что можете.' — Артур Эш",
}

var facts = []string{
	"🐙 Осьминоги имеют три сердца и голубую кровь!",
	"🍯 Мёд никогда не портится — археологи находили съедобный мёд возрастом 3000 лет!",
	"🌙 На Луне твой вес был бы в 6 раз меньше!",
	"🐧 Пингвины могут прыгать на высоту до 2 метров!",
	"🌊 В океане больше артефактов истории, чем во всех музеях мира!",
	"🧠 Человеческий мозг использует 20% всей энергии тела!",
	"🦋 Бабочки пробуют еду лапками!",
	"🌍 Банан — это ягода, а клубника — нет!",
	"⚡ Молния в 5 раз горячее поверхности Солнца!",
	"🐨 Коалы спят 22 часа в сутки!",
}

var compliments = []string{
	"✨ Ты освещаешь этот чат своим присутствием!",
	"🌟 У тебя потрясающее чувство юмора!",
	"💫 Ты делаешь мир лучше просто тем, что есть!",
	"🎨 Твоя креативность вдохновляет!",
	"🌈 Ты как радуга после дождя — приносишь радость!",
	"💎 Ты ценнее любых драгоценностей!",
	"🚀 Твоя энергия заразительна в лучшем смысле!",
	"🌸 Ты как весенний цветок — приносишь красоту в жизнь!",
	"⭐ Ты звезда этого чата!", "🎵 Твой голос важен и нужен!",
}

var motivations = []string{
	"💪 Ты сильнее, чем думаешь!",
	"🎯 Каждый маленький шаг ведёт к большой цели!",
	"🌟 Твои возможности безграничны!",
	"🚀 Сегодня отличный день для новых достижений!",
	"💫 Ты уже на пути к успеху!",
	"🏆 Победа начинается с первого шага!",
	"🌈 После каждой бури выходит солнце!",
	"💎 Ты создан для великих дел!", "⚡ В тебе есть сила изменить мир!",
	"🌸 Верь в себя — это первый шаг к успеху!",
}

var quizQuestions = []string{
	"🤔 Какой цвет получится, если смешать красный и синий?",
	"🌍 Какая самая высокая гора в мире?",
	"🐧 Где живут пингвины — на Северном или Южном полюсе?",
	"🌙 Сколько спутников у Земли?",
	"🍯 Что производят пчёлы кроме мёда?",
	"🌊 Какой океан самый большой?", "🦕 В какую эпоху жили динозавры?",
	"🌟 Какая звезда ближайшая к Земле?",
	"🏛️ В какой стране находится Тадж-Махал?",
	"🎵 Сколько струн у классической гитары?",
}

var challenges = []string{
	"📱 Час без телефона — сможешь?",
	"💧 Выпей 8 стаканов воды сегодня!",
	"📚 Прочитай 10 страниц любой книги.",
	"🚶 Пройди 10000 шагов сегодня!", "🧘 Помедитируй 5 минут.",
	"📞 Позвони старому другу.", "🎨 Нарисуй что-нибудь за 5 минут.",
	"🌱 Посади семечко или полей растение.",
	"📝 Напиши список из 10 вещей, за которые благодарен.",
	"🎵 Выучи слова новой песни.",
}

// zodiacSign holds one horoscope entry: a sign label plus its predictions.
type zodiacSign struct {
	Sign        string
	Predictions []string
}

var zodiacSigns = []zodiacSign{
	{"♈ Овен", []string{
		"Сегодня ваша энергия на пике! Отличное время для новых начинаний.",
		"Марс дарит вам силу и уверенность. Действуйте решительно!",
		"Ваша импульсивность сегодня сыграет вам на руку.",
		"Лидерские качества помогут вам достичь цели.",
	}},
	{"♉ Телец", []string{
		"Стабильность и терпение — ваши союзники сегодня.",
		"Венера благословляет ваши отношения и финансы.",
		"Не торопитесь — медленно, но верно к успеху.",
		"Ваша практичность принесёт материальную выгоду.",
	}},
	{"♊ Близнецы", []string{
		"День полон интересных встреч и неожиданных открытий.",
		"Меркурий усиливает вашу коммуникабельность.",
		"Новая информация откроет перспективы.",
		"Ваше остроумие очарует окружающих.",
	}},
	{"♋ Рак", []string{
		"Доверьтесь своей интуиции — она не подведёт.",
		"Луна усиливает ваши эмоции и чувствительность.",
		"Семейные дела требуют внимания.",
		"Забота о близких принесёт радость.",
	}},
	{"♌ Лев", []string{
		"Ваш шарм и харизма сегодня особенно заметны!",
		"Солнце освещает путь к славе и признанию.",
		"Творческие проекты получат одобрение.",
		"Ваша щедрость будет вознаграждена.",
	}},
	{"♍ Дева", []string{
		"Внимание к деталям принесёт успех в делах.",
		"Меркурий помогает в анализе и планировании.",
		"Организованность — ваше преимущество.",
		"Здоровье требует заботы и внимания.",
	}},
	{"♎ Весы", []string{
		"Гармония и баланс — ключ к решению проблем.",
		"Венера дарит красоту и эстетическое наслаждение.",
		"Партнёрские отношения на подъёме.",
		"Справедливость восторжествует в ваших делах.",
	}},
	{"♏ Скорпион", []string{
		"Глубокие размышления приведут к важным выводам.",
		"Плутон раскрывает скрытые тайны.",
		"Ваша проницательность поразит других.",
		"Трансформации принесут обновление.",
	}},
	{"♐ Стрелец", []string{
		"Приключения и новые горизонты ждут вас!",
		"Юпитер расширяет ваши возможности.",
		"Путешествия или обучение принесут пользу.",
		"Ваш оптимизм заразителен.",
	}},
	{"♑ Козерог", []string{
		"Упорство и дисциплина приведут к цели.",
		"Сатурн учит терпению и мудрости.",
		"Карьерные перспективы улучшаются.", "Ваш авторитет растёт.",
	}},
	{"♒ Водолей", []string{
		"Ваши оригинальные идеи найдут понимание.",
		"Уран приносит неожиданные возможности.",
		"Дружба и сотрудничество важны сегодня.",
		"Будущее начинается прямо сейчас.",
	}},
	{"♓ Рыбы", []string{
		"Творчество и мечты вдохновят на новые свершения.",
		"Нептун усиливает интуицию и воображение.",
		"Сострадание откроет новые возможности.",
		"Искусство и музыка принесут гармонию.",
	}},
}

var recipes = []string{
	"🍝 Паста Карбонара: спагетти + яйца + бекон + сыр пармезан + чёрный перец",
	"🥗 Греческий салат: помидоры + огурцы + фета + оливки + оливковое масло",
	"🍲 Борщ: свёкла + капуста + морковь + лук + мясо + сметана",
	"🥪 Авокадо тост: хлеб + авокадо + лимон + соль + перец",
	"🍛 Плов: рис + мясо + морковь + лук + специи",
	"🥞 Блинчики: мука + молоко + яйца + сахар + соль",
	"🍕 Пицца Маргарита: тесто + томатный соус + моцарелла + базилик",
	"🍜 Рамен: лапша + бульон + яйцо + зелёный лук + нори",
	"🧀 Сырники: творог + яйцо + мука + сахар + сметана",
	"🥙 Шаурма: лаваш + мясо + овощи + соус",
}

var games = []string{
	"🎲 Игра 'Угадай число': Я загадал число от 1 до 100. Попробуй угадать!",
	"🎯 Игра 'Правда или ложь': Коралл имеет 8 щупалец — правда или ложь?",
	"🧩 Игра '20 вопросов': Загадай предмет, а я попробую угадать за 20 вопросов!",
	"🎪 Игра 'Ассоциации': Слово 'море' — какая первая ассоциация?",
	"🎭 Игра 'Рифма': Придумай рифму к слову 'коралл'!",
	"🎨 Игра 'Описание': Опиши смайлик только словами: 🐙",
	"🔤 Игра 'Последняя буква': Город на букву 'М'!",
	"🎵 Игра 'Песня': Допой строчку: 'В лесу родилась...'",
	"🌍 Игра 'География': Назови страну на букву 'И'!",
	"🎬 Игра 'Фильм': Угадай фильм по описанию: 'Рыба-клоун ищет сына'",
}

var riddles = []string{
	"🤔 Что можно увидеть с закрытыми глазами? (Ответ: сон)",
	"🏠 В доме его нет, а на улице есть. Что это? (Ответ: буква 'У')",
	"⏰ Что становится больше, если поставить вверх ногами? (Ответ: число 6)",
	"🌊 Без рук, без ног, а гору разрушает. Что это? (Ответ: вода)",
	"🔥 Красный петушок по жердочке бежит. Что это? (Ответ: огонь)",
	"❄️ Зимой и летом одним цветом. Что это? (Ответ: ёлка)",
	"🌙 Что идёт, не двигаясь с места? (Ответ: время)",
	"🎯 У него есть шляпа, но нет головы. Что это? (Ответ: гриб)",
	"🍯 Не мёд, а липнет. Что это? (Ответ: клей)",
	"📚 Кто говорит на всех языках? (Ответ: эхо)",
}

var stories = []string{
	"📚 В 1912 году титаник затонул, но история о героизме оркестра, игравшего до конца, стала легендой.",
	"🏺 Клеопатра жила ближе по времени к высадке на Луну, чем к строительству пирамид!",
	"🎨 Ван Гог продал за всю жизнь только одну картину — 'Красные виноградники'.",
	"🐘 Наполеон боялся... котов! У великого полководца была айлурофобия.",
	"📡 Факс был изобретён в 1843 году — до изобретения телефона!",
	"🗽 Статуя Свободы изначально была коричневой, но окислилась до зелёного цвета.",
	"🦖 Динозавры жили на Земле 165 миллионов лет, а люди — всего 300 тысяч.",
	"🍫 Шоколад когда-то использовался как валюта ацтеками и майя.",
	"📖 Шекспир изобрёл более 1700 слов, которые мы используем до сих пор.",
	"🚀 Нил Армстронг оставил на Луне сумку с мусором — она там до сих пор!",
}

var pokerCards = []string{
	"🂡", "🂢", "🂣", "🂤", "🂥", "🂦", "🂧", "🂨", "🂩", "🂪", "🂫", "🂭", "🂮",
	"🂱", "🂲", "🂳", "🂴", "🂵", "🂶", "🂷", "🂸", "🂹", "🂺", "🂻", "🂽", "🂾",
	"🃁", "🃂", "🃃", "🃄", "🃅", "🃆", "🃇", "🃈", "🃉", "🃊", "🃋", "🃍", "🃎",
	"🃑", "🃒", "🃓", "🃔", "🃕", "🃖", "🃗", "🃘", "🃙", "🃚", "🃛", "🃝", "🃞",
}

var pokerCardNames = []string{
	"Туз пик", "Двойка пик", "Тройка пик", "Четвёрка пик",
	"Пятёрка пик", "Шестёрка пик", "Семёрка пик", "Восьмёрка пик",
	"Девятка пик", "Десятка пик", "Валет пик", "Дама пик",
	"Король пик", "Туз червей", "Двойка червей", "Тройка червей",
	"Четвёрка червей", "Пятёрка червей", "Шестёрка червей",
	"Семёрка червей", "Восьмёрка червей", "Девятка червей",
	"Десятка червей", "Валет червей", "Дама червей", "Король червей",
	"Туз бубей", "Двойка бубей", "Тройка бубей", "Четвёрка бубей",
	"Пятёрка бубей", "Шестёрка бубей", "Семёрка бубей",
	"Восьмёрка бубей", "Девятка бубей", "Десятка бубей", "Валет бубей",
	"Дама бубей", "Король бубей", "Туз треф", "Двойка треф",
	"Тройка треф", "Четвёрка треф", "Пятёрка треф", "Шестёрка треф",
	"Семёрка треф", "Восьмёрка треф", "Девятка треф", "Десятка треф",
	"Валет треф", "Дама треф", "Король треф",
}

var coinResults = []string{"🪙 Орёл!", "🪙 Решка!"}

var diceFaces = []string{"⚀", "⚁", "⚂", "⚃", "⚄", "⚅"}

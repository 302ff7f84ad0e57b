package i18n

var catalog = map[string]map[string]string{
	"en": {
		"appTitle":        "Flashcard Learning App",
		"emptyTitle":      "No cards yet",
		"emptyDesc":       "Create your first flashcard or import a set to start studying.",
		"filterByTags":    "Filter by tags:",
		"noTagsYet":       "No tags yet.",
		"cardsTitle":      "Cards",
		"allCards":        "All cards",
		"noCardsYetShort": "No cards yet.",
		"noCardsToStudy":  "No cards to study.",
		"statsLine":       "Total: ✅ {totalKnow} / ❌ {totalDont} · Recent20: ✅ {recentKnow} / ❌ {recentDont}",
		"speak":           "Speak",
		"dontKnow":        "Don't know",
		"know":            "Know",
		"next":            "Next",
		"quit":            "Quit",
		"autoAdvance":     "Next card in {seconds}s",
		"restoreTitle":    "Restore cards and settings",
		"restoreDesc":     "Choose how to apply the backup.",
		"merge":           "Merge",
		"overwrite":       "Overwrite",
		"cancel":          "Cancel",
		"deleteCardTitle": "Delete card?",
		"deleteCardDesc":  "This action cannot be undone.",
		"delete":          "Delete",
		"edit":            "Edit",
		"imported":        "Imported {count} cards.",
		"importErrors":    "Skipped {count} lines.",
		"restored":        "Restored {count} cards.",
		"invalidBackup":   "Invalid backup format.",
	},
	"ua": {
		"appTitle":        "Додаток для флешкарт",
		"emptyTitle":      "Поки що немає карток",
		"emptyDesc":       "Створіть першу картку або імпортуйте набір, щоб почати навчання.",
		"filterByTags":    "Фільтр за тегами:",
		"noTagsYet":       "Тегів поки що немає.",
		"cardsTitle":      "Картки",
		"allCards":        "Усі картки",
		"noCardsYetShort": "Карток поки що немає.",
		"noCardsToStudy":  "Немає карток для навчання.",
		"statsLine":       "Всього: ✅ {totalKnow} / ❌ {totalDont} · Останні 20: ✅ {recentKnow} / ❌ {recentDont}",
		"speak":           "Озвучити",
		"dontKnow":        "Не знаю",
		"know":            "Знаю",
		"next":            "Далі",
		"quit":            "Вийти",
		"autoAdvance":     "Наступна картка через {seconds} с",
		"restoreTitle":    "Відновлення карток і налаштувань",
		"restoreDesc":     "Оберіть спосіб застосування бекапу.",
		"merge":           "Об'єднати",
		"overwrite":       "Перезаписати",
		"cancel":          "Скасувати",
		"deleteCardTitle": "Видалити картку?",
		"deleteCardDesc":  "Цю дію неможливо скасувати.",
		"delete":          "Видалити",
		"edit":            "Редагувати",
		"imported":        "Імпортовано карток: {count}.",
		"importErrors":    "Пропущено рядків: {count}.",
		"restored":        "Відновлено карток: {count}.",
		"invalidBackup":   "Невірний формат бекапу.",
	},
	"ru": {
		"appTitle":        "Приложение флеш-карт",
		"emptyTitle":      "Карточек пока нет",
		"emptyDesc":       "Создайте первую карточку или импортируйте набор, чтобы начать обучение.",
		"filterByTags":    "Фильтр по тегам:",
		"noTagsYet":       "Тегов пока нет.",
		"cardsTitle":      "Карточки",
		"allCards":        "Все карточки",
		"noCardsYetShort": "Карточек пока нет.",
		"noCardsToStudy":  "Нет карточек для обучения.",
		"statsLine":       "Всего: ✅ {totalKnow} / ❌ {totalDont} · Последние 20: ✅ {recentKnow} / ❌ {recentDont}",
		"speak":           "Озвучить",
		"dontKnow":        "Не знаю",
		"know":            "Знаю",
		"next":            "Далее",
		"quit":            "Выйти",
		"autoAdvance":     "Следующая карточка через {seconds} с",
		"restoreTitle":    "Восстановление карточек и настроек",
		"restoreDesc":     "Выберите способ применения бэкапа.",
		"merge":           "Объединить",
		"overwrite":       "Перезаписать",
		"cancel":          "Отмена",
		"deleteCardTitle": "Удалить карточку?",
		"deleteCardDesc":  "Это действие нельзя отменить.",
		"delete":          "Удалить",
		"edit":            "Редактировать",
		"imported":        "Импортировано карточек: {count}.",
		"importErrors":    "Пропущено строк: {count}.",
		"restored":        "Восстановлено карточек: {count}.",
		"invalidBackup":   "Неверный формат бэкапа.",
	},
}

package config

import "github.com/spf13/viper"

// Default persona preamble sent with every generation request.
const defaultPreamble = "Ты — Коралл, умный и дружелюбный групповой бот. Ты помогаешь участникам группы, " +
	"отвечаешь на вопросы, развлекаешь и создаёшь позитивную атмосферу. " +
	"Ты говоришь живо, с юмором, но всегда вежливо и конструктивно. " +
	"Отвечай коротко и по делу 🐙"

// setDefaults registers default values for all optional configuration
// parameters. The secrets default to empty strings so viper binds their
// environment variables; validation rejects them when left unset.
func setDefaults(v *viper.Viper) {
	v.SetDefault("telegram.token", "")
	v.SetDefault("cohere.api_key", "")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("cohere.base_url", "https://api.cohere.ai")
	v.SetDefault("cohere.model", "command-r-plus")
	v.SetDefault("cohere.preamble", defaultPreamble)
	v.SetDefault("cohere.timeout", "2m")

	v.SetDefault("registry.participants_file", "participants.txt")

	v.SetDefault("database.path", "storage.db")

	v.SetDefault("scheduler.tasks.admin_refresh.enabled", true)
	v.SetDefault("scheduler.tasks.admin_refresh.schedule", "0 */30 * * * *")
	v.SetDefault("scheduler.tasks.sql_maintenance.enabled", true)
	v.SetDefault("scheduler.tasks.sql_maintenance.schedule", "0 0 4 * * *")
}

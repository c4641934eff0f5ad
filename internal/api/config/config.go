package config

// Config 配置主体
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	DB       DBConfig       `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Logstash LogstashConfig `mapstructure:"logstash"`
	Auth     AuthConfig     `mapstructure:"auth"`
	LLM      LLMConfig      `mapstructure:"llm"`
	Sheets   SheetsConfig   `mapstructure:"sheets"`
	Cron     CronConfig     `mapstructure:"cron"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port           int      `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"` // 为空时回显请求 Origin
	AuditBodyLimit int      `mapstructure:"audit_body_limit"`
}

// DBConfig 数据库配置
type DBConfig struct {
	Driver      string `mapstructure:"driver"` // mysql | postgres
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`
	SlowSQLMs   int    `mapstructure:"slow_sql_ms"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// LogstashConfig 远程日志
type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}

// AuthConfig JWT 鉴权
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
	Issuer    string `mapstructure:"issuer"`
}

type LLMConfig struct {
	URL            string           `mapstructure:"url"`
	ApiKey         string           `mapstructure:"api_key"`
	TextModel      string           `mapstructure:"text_model"`
	MaxConcurrency int64            `mapstructure:"max_concurrency"`
	Temperature    float64          `mapstructure:"temperature"`
	PromptsPath    PromptPathConfig `mapstructure:"prompts_path"`
}

type PromptPathConfig struct {
	Summarize    string `mapstructure:"summarize"`
	GeneratePost string `mapstructure:"generate_post"`
	PostSystem   string `mapstructure:"post_system"`
}

// SheetsConfig Google Sheets 接入
type SheetsConfig struct {
	Endpoint          string `mapstructure:"endpoint"`
	Range             string `mapstructure:"range"`
	ValidateOnConnect bool   `mapstructure:"validate_on_connect"`
}

// CronConfig 定时任务
type CronConfig struct {
	SheetSync string `mapstructure:"sheet_sync"`
}

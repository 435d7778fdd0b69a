package config

import (
	"os"
	"time"
)

type Config struct {
	Log        LogConfig        `yaml:"log" mapstructure:"log"`
	HTTPServer HTTPServerConfig `yaml:"httpserver" mapstructure:"httpserver"`
	RPCServer  RPCServerConfig  `yaml:"rpcserver" mapstructure:"rpcserver"`
	Game       GameConfig       `yaml:"game" mapstructure:"game"`
	Storage    StorageConfig    `yaml:"storage" mapstructure:"storage"`
	MySQL      MySQLConfig      `yaml:"mysql" mapstructure:"mysql"`
	MongoDB    MongoDBConfig    `yaml:"mongodb" mapstructure:"mongodb"`
}

type LogConfig struct {
	FileDir    string `yaml:"file_dir" mapstructure:"file_dir"`
	MaxSize    int    `yaml:"max_size" mapstructure:"max_size"` // MB
	MaxBackups int    `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAge     int    `yaml:"max_age" mapstructure:"max_age"` // days
	Compress   bool   `yaml:"compress" mapstructure:"compress"`
	Level      string `yaml:"level" mapstructure:"level"` // debug/info/warn/error...
	Dev        bool   `yaml:"dev" mapstructure:"dev"`
}

type HTTPServerConfig struct {
	Host string `yaml:"host" mapstructure:"host"`
	Port int    `yaml:"port" mapstructure:"port"`
	// AllowOrigins 为空时允许任意来源。
	AllowOrigins []string `yaml:"allow_origins" mapstructure:"allow_origins"`
}

type RPCServerConfig struct {
	Host string `yaml:"host" mapstructure:"host"`
	Port int    `yaml:"port" mapstructure:"port"`
}

type GameConfig struct {
	BoardSize      int     `yaml:"board_size" mapstructure:"board_size"`
	InitialTiles   int     `yaml:"initial_tiles" mapstructure:"initial_tiles"`
	SwipeThreshold float64 `yaml:"swipe_threshold" mapstructure:"swipe_threshold"`
	AskTimeoutMS   int     `yaml:"ask_timeout_ms" mapstructure:"ask_timeout_ms"`
	IdleTimeoutS   int     `yaml:"idle_timeout_s" mapstructure:"idle_timeout_s"`
	TokenTTLH      int     `yaml:"token_ttl_h" mapstructure:"token_ttl_h"`
	JWTSecret      string  `yaml:"jwt_secret" mapstructure:"jwt_secret"`
	Seed           int64   `yaml:"seed" mapstructure:"seed"`
	NodeID         int64   `yaml:"node_id" mapstructure:"node_id"`
}

func (g GameConfig) AskTimeout() time.Duration {
	return time.Duration(g.AskTimeoutMS) * time.Millisecond
}

func (g GameConfig) IdleTimeout() time.Duration {
	return time.Duration(g.IdleTimeoutS) * time.Second
}

func (g GameConfig) TokenTTL() time.Duration {
	return time.Duration(g.TokenTTLH) * time.Hour
}

// Secret 环境变量 JWT_SECRET 优先，未设置时使用配置中的 jwt_secret。
func (g GameConfig) Secret() string {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return s
	}
	return g.JWTSecret
}

const (
	DriverMemory  = "memory"
	DriverMySQL   = "mysql"
	DriverMongoDB = "mongodb"
)

type StorageConfig struct {
	Driver string `yaml:"driver" mapstructure:"driver"` // memory|mysql|mongodb
}

type MySQLConfig struct {
	Host     string `yaml:"host" mapstructure:"host"`
	Port     int    `yaml:"port" mapstructure:"port"`
	User     string `yaml:"user" mapstructure:"user"`
	Password string `yaml:"password" mapstructure:"password"`
	DBName   string `yaml:"dbname" mapstructure:"dbname"`
	Charset  string `yaml:"charset" mapstructure:"charset"`
	MaxIdle  int    `yaml:"max_idle" mapstructure:"max_idle"`
	MaxConn  int    `yaml:"max_conn" mapstructure:"max_conn"`
	// SlowMS 慢查询阈值（毫秒）。
	SlowMS int `yaml:"slow_ms" mapstructure:"slow_ms"`
}

type MongoDBConfig struct {
	URI             string `yaml:"uri" mapstructure:"uri"`
	Database        string `yaml:"database" mapstructure:"database"`
	ConnectTimeoutS int    `yaml:"connect_timeout_s" mapstructure:"connect_timeout_s"`
}

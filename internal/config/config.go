package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config 전역 설정 구조체（config.yaml과 1:1 매칭）
type Config struct {
	Server  ServerConfig            `mapstructure:"server"`  // 서버 설정
	Storage StorageConfig           `mapstructure:"storage"` // 결과 저장소 설정
	Sync    SyncConfig              `mapstructure:"sync"`    // 수집 스케줄 설정
	Sources map[string]SourceConfig `mapstructure:"sources"` // 소스별 독립 설정
}

// ServerConfig 서버 설정
type ServerConfig struct {
	Port int    `mapstructure:"port"` // 서비스 포트
	Mode string `mapstructure:"mode"` // Gin 실행 모드: debug/release/test
}

// StorageConfig 결과 저장소 설정
type StorageConfig struct {
	DataDir      string `mapstructure:"data_dir"`      // 날짜별 결과 파일 디렉터리
	IncludeDraws bool   `mapstructure:"include_draws"` // 승리팀 프로젝션에 무승부 포함 여부（기본 false）
	ExportCSV    bool   `mapstructure:"export_csv"`    // 날짜별 CSV 병행 저장 여부
}

// SyncConfig 수집 스케줄 설정
type SyncConfig struct {
	Cron           string   `mapstructure:"cron"`            // 일일 수집 Cron 표현식
	EnabledSources []string `mapstructure:"enabled_sources"` // 스케줄 대상 소스 목록
}

// SourceConfig 소스（외부 수집기）1개의 독립 설정
type SourceConfig struct {
	DumpDir string `mapstructure:"dump_dir"` // filedump: 원시 덤프 파일 디렉터리
	BaseURL string `mapstructure:"base_url"` // httpdump: 덤프 문서 기본 주소
	Timeout int    `mapstructure:"timeout"`  // 요청 타임아웃（초）
	Proxy   string `mapstructure:"proxy"`    // 프록시 주소
}

// LoadConfig 설정 파일（config/config.yaml）로드. 운영 항목은 .env로 덮어쓴다
func LoadConfig() (*Config, error) {
	// .env가 있으면 먼저 로드（없어도 무방）
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("설정 파일 읽기 실패: %w", err)
	}

	viper.SetTypeByDefaultValue(true)
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("설정 파일 파싱 실패: %w", err)
	}

	overrideFromEnv(&cfg)
	applyDefaults(&cfg)
	return &cfg, nil
}

// overrideFromEnv 환경 변수로 운영 설정 덮어쓰기（env > yaml）
func overrideFromEnv(cfg *Config) {
	if v := os.Getenv("KBO_DATA_DIR"); v != "" {
		cfg.Storage.DataDir = v
	}
	if src, ok := cfg.Sources["httpdump"]; ok {
		if v := os.Getenv("KBO_DUMP_URL"); v != "" {
			src.BaseURL = v
		}
		if v := os.Getenv("KBO_DUMP_PROXY"); v != "" {
			src.Proxy = v
		}
		cfg.Sources["httpdump"] = src
	}
}

// applyDefaults 비워둔 항목의 기본값
func applyDefaults(cfg *Config) {
	if cfg.Storage.DataDir == "" {
		cfg.Storage.DataDir = "./data"
	}
	if cfg.Sync.Cron == "" {
		cfg.Sync.Cron = "0 10 * * *" // 매일 10:00 수집
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
}

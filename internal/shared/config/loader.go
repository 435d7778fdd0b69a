package config

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// Load 读取配置并解码到 T。onChange 非空时监听文件变更，
// 每次变更把新解码出的完整配置交给回调；解码失败的变更被忽略并通过 onError 报告。
func Load[T any](cfgName string, onChange func(T), onError func(error)) (T, error) {
	var out T
	path, err := Resolve(cfgName)
	if err != nil {
		return out, err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("GAME2048")
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		return out, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := decode(v, &out); err != nil {
		return out, fmt.Errorf("decode config %s: %w", path, err)
	}

	if onChange != nil {
		v.OnConfigChange(func(e fsnotify.Event) {
			var next T
			if err := decode(v, &next); err != nil {
				if onError != nil {
					onError(fmt.Errorf("reload config %s: %w", e.Name, err))
				}
				return
			}
			onChange(next)
		})
		v.WatchConfig()
	}
	return out, nil
}

func decode(v *viper.Viper, out any) error {
	return v.Unmarshal(out, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "mapstructure"
		dc.WeaklyTypedInput = true
	})
}

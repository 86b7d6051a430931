package maputil

import (
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// stringToSliceHookFunc 콤마로 구분된 문자열을 문자열 슬라이스로 변환합니다.
// 각 요소의 앞뒤 공백은 제거하고, 빈 요소는 버립니다.
func stringToSliceHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.Slice {
			return data, nil
		}
		if t.Elem().Kind() != reflect.String {
			return data, nil
		}

		parts := strings.Split(data.(string), ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out, nil
	}
}

package wordbank

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultBank is the bank used when none is configured.
const DefaultBank = "zh-hant"

var builtins = map[string][][]string{
	"zh-hant": {
		{"你好", "謝謝", "再見", "蘋果", "香蕉", "快樂", "學習", "太陽", "月亮", "星星"},
		{"貓咪", "狗狗", "老虎", "大象", "小鳥", "兔子", "馬兒", "牛隻", "羊群", "魚蝦"},
		{"電視", "冰箱", "冷氣", "風扇", "電鍋", "烤箱", "洗衣", "烘乾", "吸塵", "熱水"},
		{"悟空", "鳴人", "魯夫", "炭治", "小智", "皮卡", "柯南", "多啦", "美戰", "火影"},
		{"公園", "學校", "商店", "醫院", "銀行", "餐廳", "飯店", "車站", "機場", "圖書"},
		{"吃飯", "睡覺", "跑步", "跳舞", "唱歌", "畫畫", "讀書", "寫字", "運動", "學習"},
		{"開心", "難過", "生氣", "害怕", "寂寞", "輕鬆", "緊張", "漂亮", "聰明", "勇敢"},
		{"咖啡", "牛奶", "果汁", "可樂", "啤酒", "麵包", "蛋糕", "餅乾", "水餃", "火鍋"},
		{"海洋", "高山", "河流", "湖泊", "森林", "沙漠", "天空", "白雲", "彩虹", "流星"},
		{"愛你", "加油", "感謝", "成功", "夢想", "希望", "未來", "奇蹟", "永恆", "幸福"},
	},
	"en": {
		{"cat", "dog", "sun", "map", "red", "box", "cup", "hat", "pen", "sky"},
		{"tree", "fish", "bird", "milk", "rain", "moon", "star", "ship", "lamp", "door"},
		{"apple", "tiger", "house", "chair", "river", "cloud", "bread", "train", "plant", "smile"},
		{"garden", "rocket", "silver", "pencil", "island", "bridge", "forest", "candle", "winter", "orange"},
		{"blanket", "kitchen", "morning", "journey", "picture", "thunder", "balance", "freedom", "harvest", "diamond"},
		{"elephant", "mountain", "sandwich", "festival", "umbrella", "keyboard", "squirrel", "treasure", "calendar", "dinosaur"},
		{"adventure", "chocolate", "butterfly", "telescope", "lightning", "orchestra", "pineapple", "waterfall", "crocodile", "astronaut"},
		{"playground", "strawberry", "basketball", "lighthouse", "helicopter", "watermelon", "volleyball", "typewriter", "friendship", "generation"},
		{"imagination", "celebration", "grandfather", "photography", "temperature", "electricity", "environment", "investigate", "marshmallow", "communicate"},
		{"extraordinary", "encyclopedia", "international", "responsibility", "congratulations", "refrigerator", "kindergarten", "constellation", "transformation", "architecture"},
	},
}

// Builtin returns a bundled bank by name.
func Builtin(name string, picker Picker) (*Bank, error) {
	levels, ok := builtins[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown built-in bank %q (available: %s)", name, strings.Join(BuiltinNames(), ", "))
	}
	return New(strings.ToLower(name), levels, picker)
}

// BuiltinNames lists bundled bank names in sorted order.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

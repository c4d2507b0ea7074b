// Package timezone 提供存储时间（UTC）与 NSW 展示时间之间的转换。
//
// 所有时间戳以 UTC 写入数据库；对用户展示时统一换算为
// Australia/Sydney 当地墙上时间（含夏令时偏移）。
package timezone

import "time"

const nswZone = "Australia/Sydney"

var nswLoc *time.Location

func init() {
	loc, err := time.LoadLocation(nswZone)
	if err != nil {
		panic("加载时区 " + nswZone + " 失败: " + err.Error())
	}
	nswLoc = loc
}

// ToNSWTime 将存储时间（UTC 时刻）转换为 NSW 墙上时间。
// 返回值的年月日时分秒即悉尼当地读数，便于直接序列化展示。
func ToNSWTime(t time.Time) time.Time {
	local := t.In(nswLoc)
	return time.Date(
		local.Year(), local.Month(), local.Day(),
		local.Hour(), local.Minute(), local.Second(), local.Nanosecond(),
		time.UTC,
	)
}

// FromNSWTime 将 NSW 墙上时间还原为存储时间（UTC 时刻）。
// 只取入参的墙上读数，入参自带的时区标签被忽略，
// 因此 FromNSWTime(ToNSWTime(x)) == x 对任意有效时刻成立。
func FromNSWTime(t time.Time) time.Time {
	return time.Date(
		t.Year(), t.Month(), t.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(),
		nswLoc,
	).UTC()
}

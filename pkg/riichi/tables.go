package riichi

// RonScore 荣和点数表的一档
type RonScore struct {
	Label string // 展示用标签
	Score int    // 放铳者支付的点数
}

// TsumoScore 自摸点数表的一档
// 庄家和了时三家均付 Payment；闲家和了时庄家付 ParentPayment、另两家各付 ChildPayment
type TsumoScore struct {
	Label         string
	Payment       int
	ParentPayment int
	ChildPayment  int
}

// RonTableDealer 庄家荣和点数表
var RonTableDealer = []RonScore{
	{"1500点", 1500}, {"2000点", 2000}, {"2400点", 2400},
	{"2900点", 2900}, {"3900点", 3900}, {"4800点", 4800},
	{"5800点", 5800}, {"6800点", 6800}, {"7700点", 7700},
	{"8700点", 8700}, {"9600点", 9600}, {"10600点", 10600},
	{"満貫 12000点", 12000},
	{"跳満 18000点", 18000},
	{"倍満 24000点", 24000},
	{"三倍満 36000点", 36000},
	{"役満 48000点", 48000},
}

// RonTableChild 闲家荣和点数表
var RonTableChild = []RonScore{
	{"1000点", 1000}, {"1300点", 1300}, {"1600点", 1600},
	{"2000点", 2000}, {"2600点", 2600}, {"3200点", 3200},
	{"3900点", 3900}, {"4500点", 4500}, {"5200点", 5200},
	{"5800点", 5800}, {"6400点", 6400}, {"7100点", 7100},
	{"満貫 8000点", 8000},
	{"跳満 12000点", 12000},
	{"倍満 16000点", 16000},
	{"三倍満 24000点", 24000},
	{"役満 32000点", 32000},
}

// TsumoTableDealer 庄家自摸点数表（三家均付）
var TsumoTableDealer = []TsumoScore{
	{Label: "500オール", Payment: 500}, {Label: "700オール", Payment: 700}, {Label: "800オール", Payment: 800},
	{Label: "1000オール", Payment: 1000}, {Label: "1300オール", Payment: 1300}, {Label: "1600オール", Payment: 1600},
	{Label: "2000オール", Payment: 2000}, {Label: "2600オール", Payment: 2600}, {Label: "3200オール", Payment: 3200},
	{Label: "満貫 4000オール", Payment: 4000},
	{Label: "跳満 6000オール", Payment: 6000},
	{Label: "倍満 8000オール", Payment: 8000},
	{Label: "三倍満 12000オール", Payment: 12000},
	{Label: "役満 16000オール", Payment: 16000},
}

// TsumoTableChild 闲家自摸点数表（庄家/闲家分别支付）
var TsumoTableChild = []TsumoScore{
	{Label: "300-500", ParentPayment: 500, ChildPayment: 300},
	{Label: "400-700", ParentPayment: 700, ChildPayment: 400},
	{Label: "400-800", ParentPayment: 800, ChildPayment: 400},
	{Label: "500-1000", ParentPayment: 1000, ChildPayment: 500},
	{Label: "700-1300", ParentPayment: 1300, ChildPayment: 700},
	{Label: "800-1600", ParentPayment: 1600, ChildPayment: 800},
	{Label: "1000-2000", ParentPayment: 2000, ChildPayment: 1000},
	{Label: "1300-2600", ParentPayment: 2600, ChildPayment: 1300},
	{Label: "1600-3200", ParentPayment: 3200, ChildPayment: 1600},
	{Label: "満貫 2000-4000", ParentPayment: 4000, ChildPayment: 2000},
	{Label: "跳満 3000-6000", ParentPayment: 6000, ChildPayment: 3000},
	{Label: "倍満 4000-8000", ParentPayment: 8000, ChildPayment: 4000},
	{Label: "三倍満 6000-12000", ParentPayment: 12000, ChildPayment: 6000},
	{Label: "役満 8000-16000", ParentPayment: 16000, ChildPayment: 8000},
}

// RonTable 按和了者是否为庄家返回荣和点数表
func RonTable(isDealer bool) []RonScore {
	if isDealer {
		return RonTableDealer
	}
	return RonTableChild
}

// TsumoTable 按和了者是否为庄家返回自摸点数表
func TsumoTable(isDealer bool) []TsumoScore {
	if isDealer {
		return TsumoTableDealer
	}
	return TsumoTableChild
}

// freePayoutTable 自由模式支付表
// 键为向下取整到千位的持ち点，值依次为 2/3/4 位的支付额
var freePayoutTable = map[int][3]int{
	49000: {1950, 0, 0}, 48000: {1900, 0, 0},
	47000: {1850, 0, 0}, 46000: {1800, 0, 0},
	45000: {1750, 0, 0}, 44000: {1700, 0, 0},
	43000: {1650, 0, 0}, 42000: {1600, 0, 0},
	41000: {1550, 0, 0}, 40000: {1500, 500, 0},
	39000: {1450, 550, 0}, 38000: {1400, 600, 0},
	37000: {1350, 650, 0}, 36000: {1300, 700, 0},
	35000: {1250, 750, 0}, 34000: {1200, 800, 0},
	33000: {1150, 850, 0}, 32000: {1100, 900, 0},
	31000: {1050, 950, 0}, 30000: {1000, 1000, 2000},
	29000: {950, 1050, 2050}, 28000: {900, 1100, 2100},
	27000: {850, 1150, 2150}, 26000: {800, 1200, 2200},
	25000: {750, 1250, 2250}, 24000: {700, 1300, 2300},
	23000: {650, 1350, 2350}, 22000: {600, 1400, 2400},
	21000: {550, 1450, 2450}, 20000: {500, 1500, 2500},
	19000: {450, 1550, 2550}, 18000: {400, 1600, 2600},
	17000: {350, 1650, 2650}, 16000: {300, 1700, 2700},
	15000: {250, 1750, 2750}, 14000: {200, 1800, 2800},
	13000: {150, 1850, 2850}, 12000: {100, 1900, 2900},
	11000: {50, 1950, 2950}, 10000: {0, 2000, 3000},
	9000: {50, 2050, 3050}, 8000: {100, 2100, 3100},
	7000: {150, 2150, 3150}, 6000: {200, 2200, 3200},
	5000: {250, 2250, 3250}, 4000: {300, 2300, 3300},
	3000: {350, 2350, 3350}, 2000: {400, 2400, 3400},
	1000: {450, 2450, 3450}, 0: {500, 2500, 3500},
}

// FreeModePayout 自由模式下按最终持ち点和名次查表得到的支付额
// 1位没有支付额，超出表范围的点数收敛到表的边界
func FreeModePayout(score, rank int) int {
	if rank < 2 || rank > 4 {
		return 0
	}
	key := score / 1000 * 1000
	if key < 0 {
		key = 0
	}
	if key > 49000 {
		key = 49000
	}
	return freePayoutTable[key][rank-2]
}

package tracking

type FeedType string

const (
	FeedBreastLeft  FeedType = "breastfeeding-left"
	FeedBreastRight FeedType = "breastfeeding-right"
	FeedFormula     FeedType = "formula"
	FeedPumped      FeedType = "pumped"
)

func (t FeedType) Valid() bool {
	switch t {
	case FeedBreastLeft, FeedBreastRight, FeedFormula, FeedPumped:
		return true
	}
	return false
}

func (t FeedType) IsBreastfeeding() bool {
	return t == FeedBreastLeft || t == FeedBreastRight
}

type VolumeUnit string

const (
	UnitOz VolumeUnit = "oz"
	UnitMl VolumeUnit = "ml"
)

func (u VolumeUnit) Valid() bool {
	return u == UnitOz || u == UnitMl
}

type DiaperType string

const (
	DiaperWet   DiaperType = "wet"
	DiaperDirty DiaperType = "dirty"
	DiaperBoth  DiaperType = "both"
)

func (t DiaperType) Valid() bool {
	switch t {
	case DiaperWet, DiaperDirty, DiaperBoth:
		return true
	}
	return false
}

// IsWet: wet o both.
func (t DiaperType) IsWet() bool { return t == DiaperWet || t == DiaperBoth }

// IsDirty: dirty o both.
func (t DiaperType) IsDirty() bool { return t == DiaperDirty || t == DiaperBoth }

type Wetness string

const (
	WetnessLight  Wetness = "light"
	WetnessMedium Wetness = "medium"
	WetnessHeavy  Wetness = "heavy"
)

type Consistency string

const (
	ConsistencyWatery Consistency = "watery"
	ConsistencyLoose  Consistency = "loose"
	ConsistencySeedy  Consistency = "seedy"
	ConsistencySoft   Consistency = "soft"
	ConsistencyFormed Consistency = "formed"
	ConsistencyHard   Consistency = "hard"
)

type StoolColor string

const (
	ColorYellow StoolColor = "yellow"
	ColorGreen  StoolColor = "green"
	ColorBrown  StoolColor = "brown"
	ColorBlack  StoolColor = "black"
	ColorRed    StoolColor = "red"
	ColorWhite  StoolColor = "white"
)

// IsConcerning: colores que ameritan consulta pediátrica.
func (c StoolColor) IsConcerning() bool {
	return c == ColorBlack || c == ColorRed
}

type Quantity string

const (
	QuantitySmall  Quantity = "small"
	QuantityMedium Quantity = "medium"
	QuantityLarge  Quantity = "large"
)

type SleepType string

const (
	SleepNap   SleepType = "nap"
	SleepNight SleepType = "night"
)

func (t SleepType) Valid() bool {
	return t == SleepNap || t == SleepNight
}

type WeightUnit string

const (
	WeightKg WeightUnit = "kg"
	WeightLb WeightUnit = "lb"
)

type PumpSide string

const (
	PumpLeft  PumpSide = "left"
	PumpRight PumpSide = "right"
	PumpBoth  PumpSide = "both"
)

// Kind identifica cada colección de eventos (también es el segmento de ruta).
type Kind string

const (
	KindFeed      Kind = "feeds"
	KindDiaper    Kind = "diapers"
	KindSleep     Kind = "sleeps"
	KindWeight    Kind = "weights"
	KindMedicine  Kind = "medicines"
	KindPumping   Kind = "pumpings"
	KindTummyTime Kind = "tummy-times"
)

func (k Kind) Valid() bool {
	switch k {
	case KindFeed, KindDiaper, KindSleep, KindWeight, KindMedicine, KindPumping, KindTummyTime:
		return true
	}
	return false
}

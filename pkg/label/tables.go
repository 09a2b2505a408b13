package label

// The tables in this file are pure data: known OCR misreads of Korean
// nutrition-label vocabulary and the allergen keyword sets. Keep logic out of
// here so the tables can be retuned against new OCR samples without touching
// the matching code.

// replacement is one literal substring correction.
type replacement struct {
	from, to string
}

// keywordTypos lists OCR misreads of nutrition-term keywords in the order
// they are applied. No entry's output may contain a later entry's input;
// TestNormalizeTableIsIdempotent enforces that.
var keywordTypos = []replacement{
	// 나트륨 (sodium)
	{"나트룹", "나트륨"},
	{"나트름", "나트륨"},
	{"나트릅", "나트륨"},
	{"나드륨", "나트륨"},
	{"니트륨", "나트륨"},
	{"나트늄", "나트륨"},
	// 열량 / 칼로리 (calories)
	{"열망", "열량"},
	{"얼량", "열량"},
	{"열랑", "열량"},
	{"엶량", "열량"},
	{"칼로라", "칼로리"},
	{"깔로리", "칼로리"},
	{"칼로믜", "칼로리"},
	// 탄수화물 (carbohydrate)
	{"탄수회물", "탄수화물"},
	{"탄수하물", "탄수화물"},
	{"탄수화뮬", "탄수화물"},
	{"탄수화불", "탄수화물"},
	{"단수화물", "탄수화물"},
	{"탄수화묻", "탄수화물"},
	// 당류 (sugars)
	{"딩류", "당류"},
	{"딤류", "당류"},
	{"당뮤", "당류"},
	{"당료", "당류"},
	// 단백질 (protein)
	{"단벡질", "단백질"},
	{"딘백질", "단백질"},
	{"단백잘", "단백질"},
	{"단맥질", "단백질"},
	{"단백칠", "단백질"},
	// 지방 (fat) and its 포화/트랜스 prefixes
	{"지빙", "지방"},
	{"저방", "지방"},
	{"지밤", "지방"},
	{"포회", "포화"},
	{"포와", "포화"},
	{"트렌스", "트랜스"},
	{"드랜스", "트랜스"},
	// 콜레스테롤 (cholesterol)
	{"콜레스태롤", "콜레스테롤"},
	{"콜레스터롤", "콜레스테롤"},
	{"콜레스테를", "콜레스테롤"},
	{"콜래스테롤", "콜레스테롤"},
	{"클레스테롤", "콜레스테롤"},
	// 내용량 / 제공량 (serving size)
	{"제공랑", "제공량"},
	{"내용랑", "내용량"},
	{"내옹량", "내용량"},
	// unit glyphs; NFKC folding also covers the squared forms, the literal
	// entries stay as a fallback for non-normalized input
	{"㎉", "kcal"},
	{"㎎", "mg"},
	{"kcai", "kcal"},
	{"kca1", "kcal"},
	{"keal", "kcal"},
}

// allergenTypos is the allergen-specific misread table, applied before
// keyword scanning. Distinct from keywordTypos on purpose: the vocabularies
// barely overlap and are tuned independently.
var allergenTypos = []replacement{
	{"우요", "우유"},
	{"우윤", "우유"},
	{"유제퓸", "유제품"},
	{"대듀", "대두"},
	{"데두", "대두"},
	{"땅공", "땅콩"},
	{"땅콤", "땅콩"},
	{"호듀", "호두"},
	{"아뮨드", "아몬드"},
	{"게란", "계란"},
	{"개란", "계란"},
	{"달걍", "달걀"},
	{"새위", "새우"},
	{"새무", "새우"},
	{"오정어", "오징어"},
	{"오짐어", "오징어"},
	{"조깨", "조개"},
	{"글루덴", "글루텐"},
	{"글무텐", "글루텐"},
	{"매밀", "메밀"},
	{"복승아", "복숭아"},
	{"도마토", "토마토"},
	{"고둥어", "고등어"},
	{"참께", "참깨"},
}

// safeAllergens maps multi-character keywords with low false-positive risk to
// their canonical names. Matched anywhere in the text, no context needed.
var safeAllergens = map[string]string{
	"우유":   "우유",
	"치즈":   "치즈",
	"버터":   "버터",
	"유제품":  "우유",
	"밀가루":  "밀",
	"글루텐":  "글루텐",
	"대두":   "대두",
	"땅콩":   "땅콩",
	"호두":   "호두",
	"아몬드":  "아몬드",
	"계란":   "계란",
	"달걀":   "계란",
	"난류":   "계란",
	"메밀":   "메밀",
	"새우":   "새우",
	"오징어":  "오징어",
	"조개":   "조개",
	"고등어":  "고등어",
	"복숭아":  "복숭아",
	"토마토":  "토마토",
	"돼지고기": "돼지고기",
	"쇠고기":  "쇠고기",
	"닭고기":  "닭고기",
	"참깨":   "참깨",
	// English labels
	"milk":   "우유",
	"wheat":  "밀",
	"soy":    "대두",
	"peanut": "땅콩",
	"walnut": "호두",
	"almond": "아몬드",
	"egg":    "계란",
	"shrimp": "새우",
	"squid":  "오징어",
	"clam":   "조개",
	"sesame": "참깨",
	"gluten": "글루텐",
}

// shortAllergens are single-character keywords that are common Korean
// syllables (게 in 게임, 밀 in 밀리그램). They only count inside a span that
// carries an explicit allergy marker, and only when standing alone.
var shortAllergens = map[string]string{
	"밀": "밀",
	"콩": "대두",
	"굴": "굴",
	"깨": "참깨",
	"잣": "잣",
	"게": "게",
	"알": "계란",
}

// allergenMarkers are the context words that license short-keyword matches.
var allergenMarkers = []string{"함유", "포함", "알레르기", "알러지", "contains"}

// majorAllergens is the final recall net, re-scanned against the
// whitespace-stripped raw text.
var majorAllergens = []string{
	"우유", "밀가루", "대두", "땅콩", "메밀", "새우", "계란", "호두", "고등어",
}

package translit

// itTerms is the IT-domain pronunciation dictionary: Latin words whose
// accepted Russian pronunciation differs from what the letter-level
// fallback would produce. Keys are lowercase.
var itTerms = map[string]string{
	// Programming languages
	"c++":        "си плюс плюс",
	"c#":         "си шарп",
	"f#":         "эф шарп",
	"python":     "пайтон",
	"typescript": "тайпскрипт",
	"rust":       "раст",
	"golang":     "голанг",
	"kotlin":     "котлин",
	"haskell":    "хаскелл",
	"ocaml":      "окамл",
	"erlang":     "эрланг",
	"elixir":     "эликсир",
	"clojure":    "кложур",
	"prolog":     "пролог",
	"fortran":    "фортран",
	"cobol":      "кобол",
	"pascal":     "паскаль",
	"delphi":     "делфи",
	"php":        "пи эйч пи",
	"sql":        "эс кью эль",
	"html":       "эйч ти эм эль",
	"css":        "си эс эс",
	"xml":        "икс эм эль",
	"json":       "джейсон",
	"yaml":       "ямл",
	"toml":       "томл",
	"js":         "джи эс",
	"ts":         "ти эс",

	// English numerals the fallback mangles
	"zero":      "зиро",
	"seven":     "сэвен",
	"ten":       "тен",
	"eleven":    "илэвен",
	"twelve":    "твелв",
	"thirteen":  "сёртин",
	"seventeen": "сэвентин",
	"twenty":    "твенти",

	// Code terms
	"eval":       "эвал",
	"plus":       "плас",
	"synthesize": "синтесайз",
	"nat":        "нат",
	"uint":       "юинт",
	"float":      "флоат",
	"double":     "дабл",
	"trait":      "трейт",
	"traits":     "трейтс",
	"impl":       "импл",
	"async":      "асинк",
	"await":      "эвейт",
	"const":      "конст",
	"static":     "статик",
	"override":   "оверрайд",
	"virtual":    "виртуал",
	"abstract":   "абстракт",
	"private":    "прайвит",
	"protected":  "протектед",
	"generic":    "дженерик",
	"template":   "темплейт",

	// Git and process
	"feature":  "фича",
	"branch":   "бранч",
	"merge":    "мёрдж",
	"commit":   "коммит",
	"pull":     "пулл",
	"checkout": "чекаут",
	"rebase":   "рибейз",
	"stash":    "стэш",
	"review":   "ревью",
	"deploy":   "деплой",
	"release":  "релиз",
	"debug":    "дебаг",
	"bug":      "баг",
	"refactor": "рефакторинг",
	"agile":    "эджайл",
	"scrum":    "скрам",

	// Architecture
	"framework":  "фреймворк",
	"library":    "лайбрари",
	"package":    "пакет",
	"module":     "модуль",
	"function":   "функция",
	"method":     "метод",
	"class":      "класс",
	"object":     "объект",
	"interface":  "интерфейс",
	"callback":   "коллбэк",
	"promise":    "промис",
	"handler":    "хендлер",
	"listener":   "листенер",
	"middleware": "мидлвэр",
	"endpoint":   "эндпоинт",
	"router":     "роутер",
	"controller": "контроллер",
	"service":    "сервис",
	"repository": "репозиторий",

	// Data
	"cache":     "кэш",
	"queue":     "кью",
	"array":     "массив",
	"string":    "строка",
	"boolean":   "булеан",
	"null":      "налл",
	"undefined": "андефайнд",
	"default":   "дефолт",
	"index":     "индекс",
	"query":     "квери",

	// Infrastructure
	"docker":     "докер",
	"container":  "контейнер",
	"kubernetes": "кубернетис",
	"cluster":    "кластер",
	"node":       "нода",
	"pod":        "под",
	"nginx":      "энджинкс",
	"backup":     "бэкап",
	"client":     "клиент",

	// Testing and build
	"test":    "тест",
	"mock":    "мок",
	"stub":    "стаб",
	"spec":    "спек",
	"build":   "билд",
	"bundle":  "бандл",
	"compile": "компайл",
	"webpack": "вебпак",

	// Frameworks and tools
	"react":   "риакт",
	"angular": "ангуляр",
	"vue":     "вью",
	"svelte":  "свелт",
	"next":    "некст",
	"express": "экспресс",
	"django":  "джанго",
	"flask":   "фласк",
	"fastapi": "фаст эй пи ай",
	"laravel": "ларавел",
	"redis":   "редис",
	"mongo":   "монго",
	"postgres": "постгрес",
	"github":  "гитхаб",
	"jira":    "джира",
	"slack":   "слэк",
	"postman": "постман",

	// Everyday jargon
	"request": "реквест",
	"trace":   "трейс",
	"daily":   "дейли",
	"standup": "стендап",
	"hot":     "хот",
	"reload":  "релоуд",
	"tech":    "тек",
	"debt":    "дет",
	"code":    "код",
	"smell":   "смелл",
	"best":    "бест",
	"practice": "практис",
	"use":     "юз",
	"case":    "кейс",

	// Paths and URLs
	"home":      "хоум",
	"docs":      "докс",
	"user":      "юзер",
	"users":     "юзерс",
	"admin":     "админ",
	"support":   "саппорт",
	"config":    "конфиг",
	"data":      "дата",
	"files":     "файлс",
	"download":  "даунлоад",
	"upload":    "аплоад",
	"report":    "репорт",
	"documents": "документс",
	"localhost": "локалхост",
	"api":       "эй пи ай",
	"app":       "апп",
	"web":       "веб",
	"src":       "сорс",
	"tmp":       "темп",
	"etc":       "етс",
	"opt":       "опт",

	// File formats
	"pdf": "пдф",
	"doc": "док",
	"txt": "тэкст",
	"csv": "си эс ви",
	"png": "пнг",
	"jpg": "джэйпег",
	"svg": "эс ви джи",
	"mp3": "эм пэ три",
	"mp4": "эм пэ четыре",

	// Common words
	"hello":    "хеллоу",
	"world":    "ворлд",
	"example":  "экзампл",
	"tutorial": "тьюториал",
	"company":  "компани",
	"repo":     "репо",
}

// multiWordPhrases are matched before single-word lookup, longest key
// first.
var multiWordPhrases = map[string]string{
	"pull request":  "пулл реквест",
	"merge request": "мёрдж реквест",
	"code review":   "код ревью",
	"feature branch": "фича бранч",
	"stack trace":   "стэк трейс",
	"daily standup": "дейли стендап",
	"hot fix":       "хот фикс",
	"hot reload":    "хот релоуд",
	"live reload":   "лайв релоуд",
	"dry run":       "драй ран",
	"tech debt":     "тек дет",
	"code smell":    "код смелл",
	"best practice": "бест практис",
	"use case":      "юз кейс",
	"edge case":     "эдж кейс",
}

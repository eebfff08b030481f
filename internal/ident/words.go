package ident

// codeWords is the pronunciation dictionary for words that commonly
// appear as identifier segments. Keys are lowercase.
var codeWords = map[string]string{
	// Verbs
	"get": "гет", "set": "сет", "is": "из", "has": "хэз", "can": "кэн",
	"on": "он", "off": "офф", "add": "адд", "remove": "ремув",
	"delete": "делит", "create": "криейт", "update": "апдейт",
	"find": "файнд", "search": "сёрч", "load": "лоуд", "save": "сейв",
	"read": "рид", "write": "райт", "send": "сенд", "receive": "ресив",
	"fetch": "фетч", "parse": "парс", "format": "формат",
	"convert": "конверт", "transform": "трансформ", "validate": "валидейт",
	"check": "чек", "handle": "хендл", "process": "процесс",
	"execute": "экзекьют", "run": "ран", "start": "старт", "stop": "стоп",
	"init": "инит", "close": "клоуз", "open": "оупен", "click": "клик",
	"change": "чейндж", "submit": "сабмит", "reset": "ризет",
	"clear": "клир", "show": "шоу", "hide": "хайд", "toggle": "тоггл",
	"enable": "энейбл", "disable": "дизейбл", "calculate": "калькулейт",
	"compute": "компьют", "render": "рендер", "mount": "маунт",
	"unmount": "анмаунт", "dispatch": "диспатч", "emit": "эмит",
	"listen": "лисен", "subscribe": "сабскрайб", "unsubscribe": "ансабскрайб",
	"connect": "коннект", "disconnect": "дисконнект",
	"encode": "энкоуд", "decode": "декоуд",

	// Nouns
	"user": "юзер", "data": "дата", "item": "айтем", "list": "лист",
	"array": "эррей", "object": "обджект", "value": "вэлью", "key": "кей",
	"name": "нейм", "id": "ай ди", "type": "тайп", "size": "сайз",
	"count": "каунт", "index": "индекс", "length": "ленгс",
	"status": "статус", "state": "стейт", "error": "эррор",
	"message": "мессадж", "result": "резалт", "response": "респонс",
	"request": "реквест", "event": "ивент", "action": "экшн",
	"handler": "хендлер", "callback": "коллбэк", "promise": "промис",
	"function": "функшн", "method": "метод", "class": "класс",
	"instance": "инстанс", "module": "модуль", "component": "компонент",
	"element": "элемент", "node": "ноуд", "child": "чайлд",
	"parent": "парент", "root": "рут", "path": "пас", "url": "ю ар эл",
	"file": "файл", "folder": "фолдер", "directory": "директори",
	"config": "конфиг", "settings": "сеттингс", "options": "опшнс",
	"params": "парамс", "args": "аргс", "props": "пропс",
	"attr": "аттр", "attribute": "атрибьют", "context": "контекст",
	"session": "сешн", "token": "токен", "cache": "кэш", "store": "стор",
	"service": "сервис", "client": "клиент", "server": "сервер",
	"database": "датабейз", "connection": "коннекшн", "query": "квери",
	"table": "тейбл", "column": "колумн", "row": "роу",
	"record": "рекорд", "field": "филд", "form": "форм",
	"input": "инпут", "output": "аутпут", "button": "баттон",
	"link": "линк", "image": "имадж", "text": "текст",
	"content": "контент", "body": "боди", "header": "хедер",
	"footer": "футер", "nav": "нав", "menu": "меню",
	"sidebar": "сайдбар", "modal": "модал", "popup": "попап",
	"tooltip": "тултип", "loader": "лоудер", "spinner": "спиннер",
	"icon": "айкон", "logo": "лого", "avatar": "аватар",
	"badge": "бэдж", "tag": "тэг", "label": "лейбл", "title": "тайтл",
	"description": "дескрипшн", "info": "инфо", "details": "детейлс",
	"summary": "саммари", "total": "тотал", "price": "прайс",
	"amount": "эмаунт", "balance": "бэлэнс", "date": "дейт",
	"time": "тайм", "timestamp": "таймстэмп", "version": "вёршн",
	"hash": "хэш", "string": "стринг", "number": "намбер",
	"boolean": "булеан", "null": "налл", "undefined": "андефайнд",
	"true": "тру", "false": "фолс",

	// Keywords
	"const": "конст", "var": "вар", "let": "лет", "def": "деф",
	"print": "принт", "return": "ретёрн", "import": "импорт",
	"export": "экспорт", "from": "фром", "async": "эсинк",
	"await": "эвейт", "try": "трай", "catch": "кэтч", "throw": "сроу",
	"new": "нью", "this": "зис", "self": "селф", "super": "супер",
	"extends": "экстендс", "implements": "имплементс",
	"interface": "интерфейс", "abstract": "абстракт", "static": "статик",
	"public": "паблик", "private": "прайвит", "protected": "протектед",
	"final": "файнал", "override": "оверрайд", "virtual": "виртуал",

	// Adjectives
	"valid": "вэлид", "invalid": "инвэлид", "active": "эктив",
	"inactive": "инэктив", "enabled": "энейблд", "disabled": "дизейблд",
	"visible": "визибл", "hidden": "хидден", "selected": "селектед",
	"focused": "фокусд", "loading": "лоудинг", "loaded": "лоудед",
	"pending": "пендинг", "success": "саксесс", "failed": "фейлд",
	"empty": "эмпти", "full": "фулл", "old": "олд", "first": "фёрст",
	"last": "ласт", "next": "некст", "prev": "прев",
	"previous": "привиас", "current": "каррент", "default": "дефолт",
	"custom": "кастом", "primary": "праймари", "secondary": "секондари",
	"main": "мейн", "base": "бейз", "max": "макс", "min": "мин",
	"all": "олл", "none": "нан", "any": "эни", "some": "сам",

	// Connectives
	"to": "ту", "by": "бай", "with": "виз", "for": "фор", "of": "оф",
	"in": "ин", "out": "аут", "up": "ап", "down": "даун",
	"no": "ноу", "not": "нот", "or": "ор", "and": "энд",
	"if": "иф", "else": "элс", "then": "зен", "when": "вен",
	"where": "вер", "while": "вайл", "do": "ду", "case": "кейс",
	"switch": "свитч", "break": "брейк", "continue": "континью",

	// Patterns and misc
	"authenticated": "аутентикейтед", "timeout": "таймаут",
	"repository": "репозитори", "controller": "контроллер",
	"manager": "менеджер", "factory": "фэктори", "builder": "билдер",
	"adapter": "адаптер", "wrapper": "врэппер", "helper": "хелпер",
	"util": "утил", "utils": "утилз", "common": "коммон",
	"shared": "шэрд", "global": "глобал", "local": "локал",
	"links": "линкс", "dir": "дир", "package": "пакет", "dom": "дом",
	"router": "роутер", "react": "риакт", "vue": "вью",
	"variable": "вэриабл", "side": "сайд", "dry": "драй",
	"pip": "пип", "install": "инсталл",

	// Python builtins
	"str": "стр", "repr": "репр", "len": "лен", "dict": "дикт",
	"int": "инт", "float": "флоат", "bool": "бул",

	// Abbreviation-shaped words
	"api": "эй пи ай", "html": "эйч ти эм эл", "http": "эйч ти ти пи",
	"sql": "эс кью эл", "utf": "ю ти эф", "sha": "ша", "json": "джейсон",

	// Placeholder names
	"hello": "хелло", "world": "ворлд", "plus": "плас",
	"foo": "фу", "bar": "бар", "baz": "баз", "test": "тест",
	"example": "экзампл", "demo": "демо", "sample": "сэмпл",
	"x": "икс", "y": "игрек", "z": "зет", "a": "эй", "b": "би",
	"i": "ай", "j": "джей", "k": "кей", "n": "эн", "m": "эм",
}

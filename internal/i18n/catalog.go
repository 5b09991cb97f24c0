package i18n

var catalog = map[string]map[Lang]string{
	"app.help": {
		English: "hsutools: utilities for renaming, conversions, and image resizing.",
		Chinese: "hsutools：檔案重新命名、轉檔與圖片調整工具。",
	},
	"option.lang": {
		English: "Interface language (en, zh). Env: HSU_LANG.",
		Chinese: "介面語言（en, zh），可用環境變數 HSU_LANG。",
	},
	"option.config": {
		English: "Path to a config file (default .hsutools/config.yaml).",
		Chinese: "設定檔路徑（預設為 .hsutools/config.yaml）。",
	},
	"option.log_level": {
		English: "Log level: trace, debug, info, warn, error.",
		Chinese: "記錄層級：trace、debug、info、warn、error。",
	},
	"option.yes": {
		English: "Skip confirmation prompts.",
		Chinese: "略過確認提示。",
	},

	"common.cancelled": {English: "Operation cancelled.", Chinese: "已取消操作。"},
	"common.more":      {English: "... and {count} more", Chinese: "…以及另外 {count} 個"},
	"common.yes":       {English: "Yes", Chinese: "是"},
	"common.no":        {English: "No", Chinese: "否"},
	"common.failures": {
		English: "{count} item(s) failed:",
		Chinese: "{count} 個項目失敗：",
	},
	"common.locked": {
		English: "Another hsutools process is working on {path}.",
		Chinese: "另一個 hsutools 程序正在處理 {path}。",
	},

	// rename
	"rename.help":           {English: "Batch rename file or directory names by replacing text.", Chinese: "批次以文字取代方式重新命名檔案或資料夾。"},
	"rename.path":           {English: "Directory to operate.", Chinese: "要操作的目錄。"},
	"rename.find":           {English: "Text to replace.", Chinese: "要尋找的文字。"},
	"rename.replace":        {English: "Replacement text.", Chinese: "替換文字。"},
	"rename.include_dirs":   {English: "Allow renaming directories as well.", Chinese: "允許同時重新命名資料夾。"},
	"rename.ignore":         {English: "Names to ignore.", Chinese: "要忽略的名稱。"},
	"rename.include_hidden": {English: "Include hidden entries.", Chinese: "包含隱藏項目。"},
	"rename.prompt_find":    {English: "Enter text to find", Chinese: "輸入要尋找的文字"},
	"rename.prompt_replace": {English: "Enter replacement text", Chinese: "輸入替換文字"},
	"rename.none_found":     {English: "No entries found containing '{text}'.", Chinese: "找不到包含 '{text}' 的項目。"},
	"rename.preview_header": {English: "Found {count} entry(s) to rename:", Chinese: "找到 {count} 個待重新命名的項目："},
	"rename.find_replace":   {English: "Find: '{find}' → Replace with: '{replace}'", Chinese: "尋找：'{find}' → 取代為：'{replace}'"},
	"rename.confirm":        {English: "Proceed with rename?", Chinese: "要開始重新命名嗎？"},
	"rename.none_updated":   {English: "No entries matched the criteria.", Chinese: "沒有符合條件的項目。"},
	"rename.success":        {English: "Successfully renamed {count} entries.", Chinese: "已成功重新命名 {count} 個項目。"},

	// topdf
	"topdf.help":           {English: "Convert .docx files in the directory to .pdf using LibreOffice.", Chinese: "將目錄中的 .docx 轉換為 .pdf（使用 LibreOffice）。"},
	"topdf.path":           {English: "Directory containing .docx files.", Chinese: "包含 .docx 的目錄。"},
	"topdf.ignore":         {English: "Names to ignore.", Chinese: "要忽略的名稱。"},
	"topdf.include_hidden": {English: "Include hidden files.", Chinese: "包含隱藏檔。"},
	"topdf.none":           {English: "No .docx files found to convert.", Chinese: "沒有可轉換的 .docx 檔。"},
	"topdf.preview":        {English: "Found {count} .docx file(s) to convert:", Chinese: "找到 {count} 個待轉換的 .docx："},
	"topdf.confirm":        {English: "Proceed with conversion?", Chinese: "要開始轉換嗎？"},
	"topdf.start":          {English: "Converting documents:", Chinese: "正在轉換文件："},
	"topdf.none_converted": {English: "No .docx files were converted.", Chinese: "沒有 .docx 被轉換。"},
	"topdf.success":        {English: "Successfully converted {count} file(s) to PDF.", Chinese: "已成功轉成 PDF：{count} 個檔案。"},

	// resize
	"resize.help":           {English: "Resize images with flexible sizing rules.", Chinese: "以彈性規則調整圖片大小。"},
	"resize.input":          {English: "Directory containing images to resize.", Chinese: "包含待調整圖片的目錄。"},
	"resize.output":         {English: "Directory to write resized images (defaults to INPUT/resized).", Chinese: "輸出目錄（預設為輸入目錄下的 resized）。"},
	"resize.width":          {English: "Target width. Combine with height for bounding box.", Chinese: "目標寬度，可與高度組合為邊界框。"},
	"resize.height":         {English: "Target height. Combine with width for bounding box.", Chinese: "目標高度，可與寬度組合為邊界框。"},
	"resize.max_width":      {English: "Maximum width cap after other calculations.", Chinese: "最終寬度上限。"},
	"resize.max_height":     {English: "Maximum height cap after other calculations.", Chinese: "最終高度上限。"},
	"resize.scale":          {English: "Scale factor (e.g., 0.5 halves the size).", Chinese: "縮放倍數（如 0.5 代表縮小一半）。"},
	"resize.keep_aspect":    {English: "Preserve aspect ratio when resizing.", Chinese: "保持長寬比。"},
	"resize.allow_upscale":  {English: "Permit enlarging images.", Chinese: "允許放大。"},
	"resize.quality":        {English: "Quality (1-100) for JPEG outputs.", Chinese: "JPEG 輸出品質（1-100）。"},
	"resize.format":         {English: "Force output format: jpeg, png, gif, bmp, tiff.", Chinese: "強制輸出格式：jpeg、png、gif、bmp、tiff。"},
	"resize.suffix":         {English: "Append suffix before the file extension.", Chinese: "在副檔名之前加上後綴。"},
	"resize.overwrite":      {English: "Overwrite if destination exists.", Chinese: "若檔案已存在則覆寫。"},
	"resize.recursive":      {English: "Process subdirectories recursively.", Chinese: "遞迴處理子目錄。"},
	"resize.include_hidden": {English: "Include hidden files.", Chinese: "包含隱藏檔。"},
	"resize.ignore":         {English: "Names to ignore (applied to files and directories).", Chinese: "要忽略的名稱（檔案與資料夾）。"},
	"resize.bad_quality":    {English: "quality must be between 1 and 100", Chinese: "quality 必須介於 1 到 100"},
	"resize.need_size": {
		English: "Provide at least one of width, height, max-width, max-height, or scale",
		Chinese: "至少要提供 width、height、max-width、max-height 或 scale 其中之一",
	},
	"resize.start":   {English: "Resizing images:", Chinese: "正在調整圖片："},
	"resize.none":    {English: "No images were resized (check filters or overwrite settings).", Chinese: "沒有圖片被處理（請檢查篩選或覆寫設定）。"},
	"resize.success": {English: "Resized {count} image(s). Output: {output}", Chinese: "已調整 {count} 張圖片。輸出目錄：{output}"},

	// s2tw
	"s2tw.help": {
		English: "Convert Simplified Chinese to Traditional Chinese (Taiwan) in file contents and names.",
		Chinese: "將檔案內容與名稱由簡體中文轉換為繁體中文（台灣用語）。",
	},
	"s2tw.path":           {English: "File or directory to convert.", Chinese: "要轉換的檔案或目錄。"},
	"s2tw.ext":            {English: "File extensions to convert (repeatable, default: common text files).", Chinese: "要轉換的副檔名（可重複，預設為常見文字檔）。"},
	"s2tw.no_content":     {English: "Do not convert file contents.", Chinese: "不轉換檔案內容。"},
	"s2tw.no_names":       {English: "Do not convert file and directory names.", Chinese: "不轉換檔案與資料夾名稱。"},
	"s2tw.no_backup":      {English: "Do not keep backups of rewritten files.", Chinese: "不保留被改寫檔案的備份。"},
	"s2tw.backup_dir":     {English: "Directory for backups (default: next to each file).", Chinese: "備份目錄（預設與原檔同目錄）。"},
	"s2tw.ignore":         {English: "Names to ignore.", Chinese: "要忽略的名稱。"},
	"s2tw.include_hidden": {English: "Include hidden entries.", Chinese: "包含隱藏項目。"},
	"s2tw.preview":        {English: "Converting Simplified → Traditional Chinese in {path} ({count} candidate file(s)):", Chinese: "將 {path} 由簡體轉為繁體中文（{count} 個候選檔案）："},
	"s2tw.confirm":        {English: "Proceed with conversion?", Chinese: "要開始轉換嗎？"},
	"s2tw.none":           {English: "Nothing needed conversion.", Chinese: "沒有需要轉換的項目。"},
	"s2tw.success":        {English: "Converted {count} item(s).", Chinese: "已轉換 {count} 個項目。"},
	"s2tw.stats": {
		English: "Contents: {content}  Files renamed: {files}  Directories renamed: {dirs}  Backups: {backups}  Errors: {errors}",
		Chinese: "內容：{content}  檔案更名：{files}  資料夾更名：{dirs}  備份：{backups}  錯誤：{errors}",
	},
}

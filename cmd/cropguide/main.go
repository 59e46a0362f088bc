package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"cropguide/internal/config"
	"cropguide/internal/editor"
	"cropguide/internal/guideimport"
	"cropguide/internal/imagesize"
	"cropguide/internal/keymap"
	"cropguide/internal/notify"
	"cropguide/internal/script"
	"cropguide/internal/storage"

	"golang.design/x/hotkey/mainthread"
)

// 导入嵌入参考线的等待时间
const importTimeout = 5 * time.Second

var (
	cfg      *config.Config
	notifier notify.Notifier
	store    *storage.Storage
	ctrl     *editor.Controller

	imagePath  = flag.String("image", "", "图片路径（读取自然尺寸）")
	scriptPath = flag.String("script", "", "手势脚本（YAML）")
	guidesPath = flag.String("guides", "", "参考线文件，默认为 <图片>.guides.yaml")
	aspectLock = flag.Bool("aspect-lock", false, "启用固定比例选区")
	verbose    = flag.Bool("v", false, "输出调试日志")
)

func main() {
	// 命令行参数
	bindFlag := flag.String("bind", "", "设置快捷键，格式：undo=ctrl+u")
	showKeys := flag.Bool("keys", false, "显示当前快捷键")
	showConfig := flag.Bool("config", false, "显示配置文件路径")
	version := flag.Bool("version", false, "显示版本信息")
	flag.Parse()

	if *version {
		fmt.Println("CropGuide v1.0.0")
		fmt.Println("裁剪范围与参考线编辑器")
		return
	}

	if *showConfig {
		fmt.Println("配置文件路径:", config.GetConfigPath())
		return
	}

	if *bindFlag != "" {
		if err := updateBinding(*bindFlag); err != nil {
			fmt.Println("设置快捷键失败:", err)
			os.Exit(1)
		}
		fmt.Println("快捷键已设置为:", *bindFlag)
		return
	}

	if *showKeys {
		if err := printBindings(); err != nil {
			fmt.Println("读取快捷键失败:", err)
			os.Exit(1)
		}
		return
	}

	if *imagePath == "" {
		fmt.Println("请通过 -image 指定图片")
		flag.Usage()
		os.Exit(2)
	}

	// 编辑器调用全部在主线程执行
	mainthread.Init(run)
}

func run() {
	setupLogger(*verbose)

	// 加载配置
	var err error
	cfg, err = config.Load()
	if err != nil {
		fmt.Println("加载配置失败:", err)
	}

	info, err := imagesize.Probe(*imagePath)
	if err != nil {
		fmt.Println("读取图片失败:", err)
		os.Exit(1)
	}

	sc := &script.Script{Container: script.DefaultContainer}
	if *scriptPath != "" {
		if sc, err = script.Load(*scriptPath); err != nil {
			fmt.Println("读取脚本失败:", err)
			os.Exit(1)
		}
	}
	events, err := sc.Events()
	if err != nil {
		fmt.Println("脚本无效:", err)
		os.Exit(1)
	}

	opts, err := cfg.EditorOptions()
	if err != nil {
		fmt.Println("配置无效:", err)
		os.Exit(1)
	}
	if *aspectLock || sc.AspectLock {
		opts = append(opts, editor.WithAspectLock(true))
	}

	// 初始化模块
	notifier = notify.NewNotifier()
	if err := cfg.EnsureStorageDir(); err != nil {
		fmt.Println("无法创建保存目录:", err)
	}
	store = storage.NewStorage(cfg.Storage.Directory, cfg.Storage.Format)
	if cfg.Storage.KeepDays > 0 {
		if n, err := store.Cleanup(time.Duration(cfg.Storage.KeepDays) * 24 * time.Hour); err == nil && n > 0 {
			slog.Debug("清理旧结果", "count", n)
		}
	}

	ctrl = editor.New(opts...)
	done := make(chan struct{})
	ctrl.OnStateChanged(func(ch editor.Change) {
		switch ch.Kind {
		case editor.ChangeStatus:
			if msg := ch.Status.Message(); msg != "" {
				fmt.Println(msg)
			}
		case editor.ChangeClosed:
			if ch.Result != nil {
				onApplied(*ch.Result)
			} else {
				fmt.Println("已取消编辑")
			}
			close(done)
		}
	})

	mainthread.Call(func() {
		ctrl.Open(info.Size, sc.Container, *imagePath)
	})
	importGuides()

	for _, ev := range events {
		var st editor.Status
		mainthread.Call(func() { st = ctrl.Dispatch(ev) })
		slog.Debug("事件", "event", fmt.Sprintf("%T", ev), "status", st)
		if st == editor.StatusApplied || st == editor.StatusCancelled {
			break
		}
	}

	// 脚本没有结束会话时直接应用
	select {
	case <-done:
	default:
		mainthread.Call(func() { ctrl.Apply() })
	}
}

// importGuides 后台读取参考线文件，结果回到主线程合并
func importGuides() {
	ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
	defer cancel()

	merged := make(chan struct{})
	var started bool
	mainthread.Call(func() {
		started = ctrl.StartImport(ctx, guideimport.NewSidecar(*guidesPath), func(fn func()) {
			mainthread.Call(fn)
			close(merged)
		})
	})
	if !started {
		return
	}

	select {
	case <-merged:
	case <-ctx.Done():
		slog.Warn("读取参考线超时")
	}
}

func onApplied(res editor.Result) {
	data, err := json.MarshalIndent(res, "", "    ")
	if err == nil {
		fmt.Println(string(data))
	}

	savePath, err := store.Save(res)
	if err != nil {
		fmt.Println("保存失败:", err)
		return
	}
	fmt.Println("结果已保存:", savePath)

	if cfg.Behavior.ShowNotification {
		notifier.ShowResult(res, savePath)
	}
}

func setupLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	editor.SetLogger(logger)
}

// updateBinding 更新单个动作的快捷键并保存配置
func updateBinding(spec string) error {
	action, chords, ok := strings.Cut(spec, "=")
	if !ok {
		return fmt.Errorf("格式错误，应为 动作=快捷键[,快捷键]")
	}

	c, err := config.Load()
	if err != nil {
		return err
	}

	action = strings.TrimSpace(action)
	if _, err := keymap.ParseAction(action); err != nil {
		return err
	}

	var list []string
	for _, s := range strings.Split(chords, ",") {
		if s = strings.TrimSpace(s); s != "" {
			list = append(list, s)
		}
	}
	next := make(map[string][]string, len(c.Keymap))
	for k, v := range c.Keymap {
		next[k] = v
	}
	next[action] = list
	if _, err := keymap.FromSpec(next); err != nil {
		return err
	}

	c.Keymap = next
	return c.Save()
}

func printBindings() error {
	c, err := config.Load()
	if err != nil {
		return err
	}
	b, err := keymap.FromSpec(c.Keymap)
	if err != nil {
		return err
	}
	for _, line := range b.Describe() {
		fmt.Println(line)
	}
	return nil
}
